package usecase

import "stock_dashboard/internal/feature/symbollist/domain/entity"

var seedCategories = map[string]entity.Category{
	"NVDA": entity.CategoryTech, "AAPL": entity.CategoryTech, "MSFT": entity.CategoryTech,
	"GOOGL": entity.CategoryTech, "META": entity.CategoryTech, "AMD": entity.CategoryTech,
	"INTC": entity.CategoryTech,

	"HIMS": entity.CategoryGrowth, "PLTR": entity.CategoryGrowth, "SOFI": entity.CategoryGrowth,
	"ASTS": entity.CategoryGrowth, "COIN": entity.CategoryGrowth, "RIVN": entity.CategoryGrowth,
	"HOOD": entity.CategoryGrowth,

	"UNH": entity.CategoryHealthcare, "JNJ": entity.CategoryHealthcare, "PFE": entity.CategoryHealthcare,
	"NVO": entity.CategoryHealthcare,

	"BABA": entity.CategoryChinese, "BIDU": entity.CategoryChinese, "JD": entity.CategoryChinese,
	"NIO": entity.CategoryChinese, "GRAB": entity.CategoryChinese,
}

// 初期データ: ポートフォリオ銘柄と出来高上位銘柄
var seedStocks = [][3]string{
	{"NVDA", "NVIDIA Corporation", "NASDAQ"},
	{"AAPL", "Apple Inc.", "NASDAQ"},
	{"MSFT", "Microsoft Corporation", "NASDAQ"},
	{"AMZN", "Amazon.com Inc.", "NASDAQ"},
	{"GOOGL", "Alphabet Inc.", "NASDAQ"},
	{"META", "Meta Platforms Inc.", "NASDAQ"},
	{"TSLA", "Tesla Inc.", "NASDAQ"},
	{"AMD", "Advanced Micro Devices", "NASDAQ"},
	{"HIMS", "Hims & Hers Health", "NYSE"},
	{"PLTR", "Palantir Technologies", "NYSE"},
	{"SOFI", "SoFi Technologies", "NASDAQ"},
	{"NIO", "NIO Inc.", "NYSE"},
	{"BABA", "Alibaba Group", "NYSE"},
	{"COIN", "Coinbase Global", "NASDAQ"},
	{"ASTS", "AST SpaceMobile", "NASDAQ"},
	{"RIVN", "Rivian Automotive", "NASDAQ"},
	{"INTC", "Intel Corporation", "NASDAQ"},
	{"NFLX", "Netflix Inc.", "NASDAQ"},
	{"CRM", "Salesforce Inc.", "NYSE"},
	{"PYPL", "PayPal Holdings", "NASDAQ"},
	{"UBER", "Uber Technologies", "NYSE"},
	{"SHOP", "Shopify Inc.", "NYSE"},
	{"JPM", "JPMorgan Chase", "NYSE"},
	{"BAC", "Bank of America", "NYSE"},
	{"UNH", "UnitedHealth Group", "NYSE"},
	{"JNJ", "Johnson & Johnson", "NYSE"},
	{"PFE", "Pfizer Inc.", "NYSE"},
	{"NVO", "Novo Nordisk", "NYSE"},
	{"WMT", "Walmart Inc.", "NYSE"},
	{"HD", "Home Depot", "NYSE"},
	{"NKE", "Nike Inc.", "NYSE"},
	{"SBUX", "Starbucks Corp.", "NASDAQ"},
	{"MCD", "McDonald's Corp.", "NYSE"},
	{"DIS", "Walt Disney Co.", "NYSE"},
	{"XOM", "Exxon Mobil", "NYSE"},
	{"CVX", "Chevron Corp.", "NYSE"},
	{"BA", "Boeing Co.", "NYSE"},
	{"CAT", "Caterpillar Inc.", "NYSE"},
	{"BIDU", "Baidu Inc.", "NASDAQ"},
	{"JD", "JD.com Inc.", "NASDAQ"},
	{"GRAB", "Grab Holdings", "NASDAQ"},
	{"CRWD", "CrowdStrike Holdings", "NASDAQ"},
	{"SNOW", "Snowflake Inc.", "NYSE"},
	{"DDOG", "Datadog Inc.", "NASDAQ"},
	{"NET", "Cloudflare Inc.", "NYSE"},
	{"ABNB", "Airbnb Inc.", "NASDAQ"},
	{"RBLX", "Roblox Corp.", "NYSE"},
	{"HOOD", "Robinhood Markets", "NASDAQ"},
	{"SMCI", "Super Micro Computer", "NASDAQ"},
}

// DefaultPopularStocks returns the initial catalogue. SortKey follows list order.
func DefaultPopularStocks() []entity.PopularStock {
	out := make([]entity.PopularStock, 0, len(seedStocks))
	for i, s := range seedStocks {
		cat, ok := seedCategories[s[0]]
		if !ok {
			cat = entity.CategoryOther
		}
		out = append(out, entity.PopularStock{
			Symbol:   s[0],
			Name:     s[1],
			Exchange: s[2],
			Category: cat,
			IsActive: true,
			SortKey:  i + 1,
		})
	}
	return out
}
