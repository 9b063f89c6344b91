// Package catalog holds the static, read-only catalog of purchasable
// items (broadcast templates, .MOGRT templates, chroma-key scenes) and the
// filtering/pagination helpers the storefront views consume.
package catalog

import "github.com/danielterto2000/broadcastmotion-api/models"

var Categories = []models.Category{
	{ID: "all", Name: "Todos os Templates", FilterValue: "all"},
	{ID: "economy", Name: "Indicadores Econômicos", FilterValue: "economy"},
	{ID: "agriculture", Name: "Agropecuária", FilterValue: "agriculture"},
	{ID: "weather", Name: "Meteorologia", FilterValue: "weather"},
	{ID: "finance", Name: "Financeiro", FilterValue: "finance"},
	{ID: "tables", Name: "Tabelas", FilterValue: "tables"},
}

var Templates = []models.Template{
	{
		ID: "1", Name: "Indicadores Econômicos Modernos", ImageURL: "https://i.imgur.com/7iMb3HZ.png",
		Price: 299, Category: "economy", CategoryDisplayName: "Cotação & Mercado",
		DetailedDescription: "Pacote completo de indicadores econômicos com design moderno e animações suaves. Ideal para telejornais, programas de análise de mercado e conteúdo digital focado em finanças. Fácil integração e personalização de dados.",
		Features:            []string{"Textos editáveis para valores e legendas", "Cores personalizáveis", "Animação de entrada e saída", "Loopable", "Design responsivo para diferentes aspect ratios"},
		SoftwareCompatibility: []string{"Mago GC", "VizRT", "CasparCG", "vMix (GT Title)", "OBS (via Browser Source com HTML)"},
		Resolution:          "Full HD (1920x1080)", Duration: "10-20 segundos (ajustável)", FileFormat: ".gtzip, HTML/CSS/JS",
	},
	{
		ID: "2", Name: "Gráfico Exportação Soja BR x China", ImageURL: "https://i.imgur.com/oG8WllO.png",
		Price: 349, Category: "agriculture", CategoryDisplayName: "Gráfico de Exportação",
		DetailedDescription: "Template de gráfico de barras comparativo, perfeito para visualizar dados de exportação entre dois países ou entidades. Foco em clareza e impacto visual para o setor agropecuário.",
		Features:            []string{"Dados dinâmicos (até 10 barras)", "Logos dos países/entidades customizáveis", "Animação de crescimento das barras", "Legendas e títulos editáveis"},
		SoftwareCompatibility: []string{"Mago GC", "Ross Xpression", "ChyronHego"},
		Resolution:          "Full HD (1920x1080) / 4K (3840x2160)", Duration: "Ajustável", FileFormat: ".mgtemplate (Mago), .scene (Ross)",
	},
	{
		ID: "3", Name: "Comparativo Exportação BR x Rússia", ImageURL: "https://i.imgur.com/RZHAMpO.png",
		Price: 349, Category: "agriculture", CategoryDisplayName: "Comparativo de Barras",
		DetailedDescription: "Gráfico de barras horizontais para comparar dados de exportação, importação ou outros indicadores entre Brasil e Rússia. Design limpo e profissional.",
		Features:            []string{"Até 8 itens comparativos", "Valores e textos totalmente editáveis", "Paleta de cores ajustável", "Animações suaves"},
		SoftwareCompatibility: []string{"Mago GC", "VizRT", "OBS (HTML)"},
		Resolution:          "Full HD (1920x1080)", FileFormat: ".gtzip, .html",
	},
	{
		ID: "4", Name: "Previsão do Tempo Completa (7 dias)", ImageURL: "https://i.imgur.com/bbFv54P.png",
		Price: 399, Category: "weather", CategoryDisplayName: "Meteorologia Avançada",
		DetailedDescription: "Template de previsão do tempo para 7 dias, incluindo ícones climáticos animados, temperaturas máximas/mínimas e informações adicionais como umidade e vento. Ideal para telejornais e programas regionais.",
		Features:            []string{"Ícones animados para diversas condições climáticas", "Dados de temperatura (Max/Min) editáveis", "Campos para umidade, vento, sensação térmica", "Fundo personalizável (imagem ou vídeo)", "Integração com feed de dados (opcional, requer customização)"},
		SoftwareCompatibility: []string{"Mago GC", "VizRT (com scripting)", "CasparCG"},
		Resolution:          "Full HD (1920x1080)", Duration: "Loopable / Controlado por dados", FileFormat: ".gtzip, .via (Viz Scene)",
	},
	{
		ID: "5", Name: "Diferencial de Base Agrícola (Mapa)", ImageURL: "https://i.imgur.com/CUtv0T3.png",
		Price: 379, Category: "agriculture", CategoryDisplayName: "Mapa Agropecuário Interativo",
		DetailedDescription: "Mapa do Brasil com indicadores de diferencial de base para produtos agrícolas por estado. Visualização clara e informativa para o agronegócio.",
		Features:            []string{"Mapa vetorial do Brasil", "Valores por estado editáveis", "Legenda dinâmica", "Cores personalizáveis por faixas de valores"},
		SoftwareCompatibility: []string{"Mago GC (HTML/JS)", "Adobe After Effects (para edição manual)"},
		Resolution:          "Full HD (1920x1080)", FileFormat: ".html, .aep",
	},
	{
		ID: "6", Name: "Tabela Boi Gordo por Estado", ImageURL: "https://i.imgur.com/cm0XWiy.png",
		Price: 329, Category: "tables", CategoryDisplayName: "Tabela de Indicadores Agro",
		DetailedDescription: "Template de tabela para exibir cotações de boi gordo ou outros produtos agropecuários por estado. Design limpo e fácil de ler.",
		Features:            []string{"Até 10 linhas de dados", "Colunas personalizáveis (Estado, Preço, Variação)", "Cores e fontes ajustáveis", "Animação de entrada de dados"},
		SoftwareCompatibility: []string{"Mago GC", "vMix (GT Title)", "OBS (HTML)"},
		Resolution:          "Full HD (1920x1080)", FileFormat: ".gtzip, .html",
	},
	{
		ID: "7", Name: "Comparativo Global Boi no Mundo", ImageURL: "https://i.imgur.com/OotXEft.png",
		Price: 359, Category: "agriculture", CategoryDisplayName: "Gráfico Comparativo Global",
		DetailedDescription: "Gráfico comparativo para dados globais do mercado de bovinos, como produção, consumo ou exportação por país. Design impactante com mapa mundi estilizado.",
		Features:            []string{"Visualização em mapa estilizado", "Destaque para até 5 países", "Valores e legendas editáveis", "Animações sutis"},
		SoftwareCompatibility: []string{"Adobe After Effects (para render)", "Mago GC (versão simplificada HTML)"},
		Resolution:          "4K (3840x2160)", Duration: "15 segundos", FileFormat: ".aep, .mp4 (renderizado), .html (limitado)",
	},
	{
		ID: "8", Name: "Painel Fechamento do Mercado Financeiro", ImageURL: "https://i.imgur.com/STdTy9t.png",
		Price: 299, Category: "economy", CategoryDisplayName: "Indicadores Econômicos Essenciais",
		DetailedDescription: "Painel elegante para exibir os principais indicadores de fechamento do mercado financeiro: Ibovespa, Dólar, Euro e Ouro. Ideal para vinhetas ou inserções rápidas.",
		Features:            []string{"Campos para 4 indicadores principais", "Valores e variações editáveis", "Design limpo e moderno", "Animação de entrada e saída rápida"},
		SoftwareCompatibility: []string{"Mago GC", "VizRT", "vMix (GT Title)"},
		Resolution:          "Full HD (1920x1080)", Duration: "8-12 segundos", FileFormat: ".gtzip, .via",
	},
	{
		ID: "9", Name: "Gráfico Dólar Comercial - Linha (Estilo 1)", ImageURL: "https://i.imgur.com/jNxaPoi.png",
		Price: 319, Category: "finance", CategoryDisplayName: "Gráfico Financeiro de Linha",
		DetailedDescription: "Template de gráfico de linha para acompanhar a variação do Dólar Comercial ou outros ativos financeiros. Estilo 1, com foco em clareza e tendências.",
		Features:            []string{"Até 30 pontos de dados editáveis", "Eixo X e Y customizáveis", "Cores e espessura da linha ajustáveis", "Título e subtítulo dinâmicos"},
		SoftwareCompatibility: []string{"Mago GC (HTML/JS)", "Adobe After Effects"},
		Resolution:          "Full HD (1920x1080)", FileFormat: ".html, .aep",
	},
	{
		ID: "10", Name: "Gráfico Dólar Comercial - Linha (Estilo 2)", ImageURL: "https://i.imgur.com/UqwRTT2.png",
		Price: 319, Category: "finance", CategoryDisplayName: "Gráfico Financeiro Detalhado",
		DetailedDescription: "Gráfico de linha avançado para Dólar Comercial, com destaque para pontos de máximo e mínimo e informações adicionais. Estilo 2, mais detalhado.",
		Features:            []string{"Plotagem de dados históricos", "Destaque para picos e vales", "Tooltips interativos (versão HTML)", "Legendas e informações contextuais"},
		SoftwareCompatibility: []string{"Mago GC (HTML/JS com Chart.js)", "OBS (Browser Source)"},
		Resolution:          "Full HD (1920x1080) / Ajustável para Web", FileFormat: ".html",
	},
	{
		ID: "11", Name: "Painel de Clima Elegante", ImageURL: "https://i.imgur.com/4r8sSM8.png",
		Price: 359, Category: "weather", CategoryDisplayName: "Tempo & Cidade Atual",
		DetailedDescription: "Painel de clima para exibição da temperatura atual, condição climática (com ícone) e nome da cidade. Design elegante e minimalista.",
		Features:            []string{"Ícones climáticos incluídos", "Temperatura e nome da cidade editáveis", "Fundo personalizável (cor sólida ou imagem)", "Animação sutil de entrada"},
		SoftwareCompatibility: []string{"Mago GC", "vMix (GT Title)", "OBS (HTML)"},
		Resolution:          "Full HD (1920x1080)", Duration: "Loopable / 10 segundos", FileFormat: ".gtzip, .html",
	},
	{
		ID: "12", Name: "Comparativo Exportações Agrícolas (Soja)", ImageURL: "https://i.imgur.com/anRuKtC.png",
		Price: 379, Category: "agriculture", CategoryDisplayName: "Comparativo Setorial Detalhado",
		DetailedDescription: "Template gráfico detalhado para comparar dados de exportações agrícolas, com foco em soja ou outros produtos. Inclui gráficos de pizza e barras.",
		Features:            []string{"Gráfico de pizza para market share", "Gráfico de barras para evolução temporal", "Todos os dados e textos editáveis", "Cores e branding personalizáveis"},
		SoftwareCompatibility: []string{"Mago GC (HTML/JS)", "Adobe After Effects (para animações complexas)"},
		Resolution:          "Full HD (1920x1080)", Duration: "20-30 segundos", FileFormat: ".html, .aep",
	},
}

var ChromaKeyCategories = []models.Category{
	{ID: "all", Name: "Todos os Cenários", FilterValue: "all"},
	{ID: "news", Name: "Jornalismo", FilterValue: "news"},
	{ID: "talkshow", Name: "Talk Show", FilterValue: "talkshow"},
	{ID: "podcast", Name: "Podcast", FilterValue: "podcast"},
	{ID: "esports", Name: "Game / eSports", FilterValue: "esports"},
	{ID: "corporate", Name: "Corporativo", FilterValue: "corporate"},
}

var ChromaKeyTemplates = []models.ChromaKeyTemplate{
	{ID: "ck1", Name: "Estúdio de Notícias Moderno", ImageURL: "https://i.imgur.com/sFqk1qS.png", Price: 499, Category: "news", CategoryDisplayName: "Jornalismo Central"},
	{ID: "ck2", Name: "Arena Gamer Iluminada", ImageURL: "https://i.imgur.com/gOqcc6E.png", Price: 459, Category: "esports", CategoryDisplayName: "Palco eSports"},
	{ID: "ck3", Name: "Lounge para Talk Show", ImageURL: "https://i.imgur.com/yN3z8qL.png", Price: 529, Category: "talkshow", CategoryDisplayName: "Entrevistas"},
	{ID: "ck4", Name: "Estúdio Podcast Minimalista", ImageURL: "https://i.imgur.com/j6kZ4wT.png", Price: 399, Category: "podcast", CategoryDisplayName: "Podcast Hub"},
	{ID: "ck5", Name: "Redação de Jornal Dinâmica", ImageURL: "https://i.imgur.com/iBv9L4M.png", Price: 489, Category: "news", CategoryDisplayName: "News Desk"},
	{ID: "ck6", Name: "Escritório Corporativo Virtual", ImageURL: "https://i.imgur.com/uJkF2wP.png", Price: 429, Category: "corporate", CategoryDisplayName: "Apresentações"},
	{ID: "ck7", Name: "Cenário eSports Neon", ImageURL: "https://i.imgur.com/k2wXvR8.png", Price: 469, Category: "esports", CategoryDisplayName: "Competição Gamer"},
	{ID: "ck8", Name: "Estúdio de Podcast Urbano", ImageURL: "https://i.imgur.com/wPzX9vM.png", Price: 419, Category: "podcast", CategoryDisplayName: "Estilo Industrial"},
}

var MogrtCategories = []models.Category{
	{ID: "all", Name: "Todos os Mockups", FilterValue: "all"},
	{ID: "lower-thirds", Name: "Lower Thirds", FilterValue: "lower-thirds"},
	{ID: "titles", Name: "Títulos Animados", FilterValue: "titles"},
	{ID: "social", Name: "Redes Sociais / CTA", FilterValue: "social"},
	{ID: "openers", Name: "Aberturas / Vinhetas", FilterValue: "openers"},
	{ID: "transitions", Name: "Transições", FilterValue: "transitions"},
	{ID: "info", Name: "Informativos / Avisos", FilterValue: "info"},
	{ID: "packs-youtube", Name: "Pacotes YouTube", FilterValue: "packs-youtube"},
	{ID: "packs-podcast", Name: "Pacotes Podcast", FilterValue: "packs-podcast"},
	{ID: "packs-tv", Name: "Pacotes TV", FilterValue: "packs-tv"},
	{ID: "packs-corp", Name: "Pacotes Corporativos", FilterValue: "packs-corp"},
}

var mogrtSpecDefault = models.MogrtSpecification{
	PremiereVersion: "CC 2020+",
	Resolution:      "Full HD / 4K",
	Customizable:    []string{"Texto", "Cor", "Logo"},
	Background:      "Transparente",
}

var MogrtTemplates = []models.MogrtTemplate{
	{ID: "m1", Name: "Lower Third Tech Azul", StaticThumbnailURL: "https://i.imgur.com/Lz4Nq9Y.png", Price: 79, Category: "lower-thirds", CategoryDisplayName: "Lower Third", Specifications: mogrtSpecDefault},
	{ID: "m2", Name: "Título Dinâmico Neon", StaticThumbnailURL: "https://i.imgur.com/A6qZuG1.png", Price: 99, Category: "titles", CategoryDisplayName: "Título Animado", Specifications: mogrtSpecDefault},
	{ID: "m3", Name: "CTA Instagram Moderno", StaticThumbnailURL: "https://i.imgur.com/tV5xKSR.png", Price: 59, Category: "social", CategoryDisplayName: "Rede Social", Specifications: mogrtSpecDefault},
	{ID: "m4", Name: "Abertura Explosiva Podcast", StaticThumbnailURL: "https://i.imgur.com/rO3yP7c.png", Price: 129, Category: "openers", CategoryDisplayName: "Abertura", Specifications: mogrtSpecDefault, IsNichePackage: true, NichePackageDetails: &models.NichePackageDetails{Icon: "fas fa-podcast", TitleHighlight: "Kit Podcast Pro"}},
	{ID: "m5", Name: "Transição Glitch Rápida", StaticThumbnailURL: "https://i.imgur.com/uJkF2wP.png", Price: 49, Category: "transitions", CategoryDisplayName: "Transição", Specifications: mogrtSpecDefault},
	{ID: "m6", Name: "Aviso Importante Animado", StaticThumbnailURL: "https://i.imgur.com/wPzX9vM.png", Price: 69, Category: "info", CategoryDisplayName: "Informativo", Specifications: mogrtSpecDefault},
	{ID: "m7", Name: "Lower Third Corporativo Elegante", StaticThumbnailURL: "https://i.imgur.com/sFqk1qS.png", Price: 89, Category: "lower-thirds", CategoryDisplayName: "Lower Third", Specifications: mogrtSpecDefault},
	{ID: "m8", Name: "Pacote Completo YouTube Gamer", StaticThumbnailURL: "https://i.imgur.com/gOqcc6E.png", Price: 249, Category: "packs-youtube", CategoryDisplayName: "Pacote YouTube", Specifications: mogrtSpecDefault, IsNichePackage: true, NichePackageDetails: &models.NichePackageDetails{Icon: "fab fa-youtube", TitleHighlight: "Kit YouTube Clean"}},
	{ID: "m9", Name: "GC Jornalístico Avançado", StaticThumbnailURL: "https://i.imgur.com/yN3z8qL.png", Price: 299, Category: "packs-tv", CategoryDisplayName: "Pacote TV", Specifications: mogrtSpecDefault, IsNichePackage: true, NichePackageDetails: &models.NichePackageDetails{Icon: "fas fa-tv-alt", TitleHighlight: "Pacote Jornalístico TV"}},
	{ID: "m10", Name: "Lower Third Minimalista Branco", StaticThumbnailURL: "https://i.imgur.com/k2wXvR8.png", Price: 79, Category: "lower-thirds", CategoryDisplayName: "Lower Third", Specifications: mogrtSpecDefault},
	{ID: "m11", Name: "Título Impactante para Vlogs", StaticThumbnailURL: "https://i.imgur.com/j6kZ4wT.png", Price: 99, Category: "titles", CategoryDisplayName: "Título Animado", Specifications: mogrtSpecDefault},
	{ID: "m12", Name: "CTA TikTok Dinâmico", StaticThumbnailURL: "https://i.imgur.com/iBv9L4M.png", Price: 59, Category: "social", CategoryDisplayName: "Rede Social", Specifications: mogrtSpecDefault},
}

// Coupons is the active coupon table. A coupon applies only when active
// and the cart subtotal meets its minimum purchase.
var Coupons = []models.Coupon{
	{
		Code: "BEMVINDO10", DiscountType: models.DiscountTypePercentage, Value: 10,
		Description: "10% de desconto para novos clientes!", MinPurchase: 50,
		IsActive: true, ExpiryDate: "2024-12-31",
	},
	{
		Code: "PROMO50", DiscountType: models.DiscountTypeFixed, Value: 50,
		Description: "R$50 de desconto em compras acima de R$500!", MinPurchase: 500,
		IsActive: true, ExpiryDate: "2024-10-31",
	},
	{
		Code: "FRETEGRATIS", DiscountType: models.DiscountTypeFixed, Value: 0,
		Description: "Cupom de teste (sem valor real).",
		IsActive:    false, UsageCount: 10, ExpiryDate: "2023-12-31",
	},
}
