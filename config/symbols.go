package config

// defaultWatchlist is the set of trading-pair symbols the crypto cache
// tracks when the config file does not list its own. IRT pairs quote in
// rial on the wire, USDT pairs in dollar.
var defaultWatchlist = []string{
	// IRT pairs
	"BTCIRT", "ETHIRT", "LTCIRT", "USDTIRT", "XRPIRT", "BCHIRT", "BNBIRT", "EOSIRT", "XLMIRT", "ETCIRT",
	"TRXIRT", "DOGEIRT", "UNIIRT", "DAIIRT", "LINKIRT", "DOTIRT", "AAVEIRT", "ADAIRT", "SHIBIRT", "FTMIRT",
	"MATICIRT", "AXSIRT", "MANAIRT", "SANDIRT", "AVAXIRT", "MKRIRT", "GMTIRT", "USDCIRT", "CHZIRT", "GRTIRT",
	"CRVIRT", "EGLDIRT", "HBARIRT", "IMXIRT", "WBTCIRT", "ONEIRT", "ENSIRT", "SUSHIIRT", "LDOIRT", "STORJIRT",
	"XMRIRT", "ATOMIRT", "NOTIRT", "XTZIRT", "FILIRT", "SOLIRT", "QNTIRT", "FETIRT", "LPTIRT", "COMPIRT",
	"BATIRT", "SNXIRT", "1INCHIRT", "RSRIRT", "YFIIRT", "APEIRT", "ARBIRT", "DYDXIRT", "TONIRT", "APTIRT",
	"ALGOIRT", "NEARIRT", "ZRXIRT", "MASKIRT", "FLOWIRT", "ENJIRT",

	// USDT pairs
	"BTCUSDT", "ETHUSDT", "LTCUSDT", "XRPUSDT", "BCHUSDT", "BNBUSDT", "EOSUSDT", "XLMUSDT", "ETCUSDT", "TRXUSDT",
	"DOGEUSDT", "UNIUSDT", "DAIUSDT", "LINKUSDT", "DOTUSDT", "AAVEUSDT", "ADAUSDT", "SHIBUSDT", "FTMUSDT",
	"MATICUSDT", "AXSUSDT", "MANAUSDT", "SANDUSDT", "AVAXUSDT", "MKRUSDT", "GMTUSDT", "USDCUSDT", "COMPUSDT",
	"HBARUSDT", "WBTCUSDT", "ATOMUSDT", "ENSUSDT", "ONEUSDT", "XTZUSDT", "FLOWUSDT", "BATUSDT", "YFIUSDT",
	"QNTUSDT", "IMXUSDT", "SOLUSDT", "TONUSDT", "NEARUSDT", "CRVUSDT", "EGLDUSDT", "LPTUSDT", "1INCHUSDT",
	"APEUSDT", "ARBUSDT", "APTUSDT", "ZRXUSDT", "SUSHIUSDT", "FETUSDT", "ALGOUSDT", "MASKUSDT", "STORJUSDT",
	"XMRUSDT", "FILUSDT", "ENJUSDT", "CHZUSDT", "DYDXUSDT", "LDOUSDT",
}

// DefaultWatchlist returns a copy so callers cannot mutate the package
// default from under a running cache.
func DefaultWatchlist() []string {
	out := make([]string, len(defaultWatchlist))
	copy(out, defaultWatchlist)
	return out
}
