package cache

import "strings"

// CryptoInfo is the display name and icon for a base asset.
type CryptoInfo struct {
	Name string
	Icon string
}

// cryptoInfo maps base asset symbols to their Persian display name and
// icon. Keys follow the upstream naming, including the scaled prefixes
// (1M_BTT, 100K_FLOKI, 1B_BABYDOGE).
var cryptoInfo = map[string]CryptoInfo{
	"BTC":         {Name: "بیت کوین", Icon: "₿"},
	"ETH":         {Name: "اتریوم", Icon: "Ξ"},
	"LTC":         {Name: "لایت کوین", Icon: "Ł"},
	"USDT":        {Name: "تتر", Icon: "₮"},
	"XRP":         {Name: "ریپل", Icon: "XRP"},
	"BCH":         {Name: "بیت کوین کش", Icon: "BCH"},
	"BNB":         {Name: "بایننس کوین", Icon: "BNB"},
	"DOGE":        {Name: "دوج کوین", Icon: "Ð"},
	"ADA":         {Name: "کاردانو", Icon: "ADA"},
	"SHIB":        {Name: "شیبا اینو", Icon: "SHIB"},
	"SOL":         {Name: "سولانا", Icon: "SOL"},
	"DOT":         {Name: "پولکادات", Icon: "DOT"},
	"MATIC":       {Name: "پالیگان", Icon: "MATIC"},
	"AVAX":        {Name: "آوالانچ", Icon: "AVAX"},
	"EOS":         {Name: "ایاس", Icon: "EOS"},
	"XLM":         {Name: "استلار", Icon: "XLM"},
	"ETC":         {Name: "اتریوم کلاسیک", Icon: "ETC"},
	"TRX":         {Name: "ترون", Icon: "TRX"},
	"UNI":         {Name: "یونی سواپ", Icon: "UNI"},
	"DAI":         {Name: "دای", Icon: "DAI"},
	"LINK":        {Name: "چین لینک", Icon: "LINK"},
	"AAVE":        {Name: "آوه", Icon: "AAVE"},
	"FTM":         {Name: "فانتوم", Icon: "FTM"},
	"AXS":         {Name: "اکسی اینفینیتی", Icon: "AXS"},
	"MANA":        {Name: "دیسنترالند", Icon: "MANA"},
	"SAND":        {Name: "سندباکس", Icon: "SAND"},
	"MKR":         {Name: "میکر", Icon: "MKR"},
	"GMT":         {Name: "استپن", Icon: "GMT"},
	"USDC":        {Name: "یو اس دی کوین", Icon: "USDC"},
	"CHZ":         {Name: "چیلیز", Icon: "CHZ"},
	"GRT":         {Name: "گراف", Icon: "GRT"},
	"CRV":         {Name: "کرو", Icon: "CRV"},
	"BAND":        {Name: "بند پروتکل", Icon: "BAND"},
	"COMP":        {Name: "کامپاند", Icon: "COMP"},
	"EGLD":        {Name: "الروند", Icon: "EGLD"},
	"HBAR":        {Name: "هدرا", Icon: "HBAR"},
	"GAL":         {Name: "گالا", Icon: "GAL"},
	"WBTC":        {Name: "رپد بیت کوین", Icon: "WBTC"},
	"IMX":         {Name: "ایموتابل ایکس", Icon: "IMX"},
	"ONE":         {Name: "هارمونی", Icon: "ONE"},
	"GLM":         {Name: "گولم", Icon: "GLM"},
	"ENS":         {Name: "انس", Icon: "ENS"},
	"1M_BTT":      {Name: "بیت تورنت", Icon: "BTT"},
	"SUSHI":       {Name: "سوشی سواپ", Icon: "SUSHI"},
	"LDO":         {Name: "لیدو", Icon: "LDO"},
	"ATOM":        {Name: "کازموس", Icon: "ATOM"},
	"ZRO":         {Name: "زرو", Icon: "ZRO"},
	"STORJ":       {Name: "استورج", Icon: "STORJ"},
	"ANT":         {Name: "آراگون", Icon: "ANT"},
	"AEVO":        {Name: "آیوو", Icon: "AEVO"},
	"100K_FLOKI":  {Name: "فلوکی", Icon: "FLOKI"},
	"RSR":         {Name: "ریزرو رایتس", Icon: "RSR"},
	"API3":        {Name: "ای پی آی 3", Icon: "API3"},
	"XMR":         {Name: "مونرو", Icon: "XMR"},
	"OM":          {Name: "مانترا دائو", Icon: "OM"},
	"RDNT":        {Name: "رادینت", Icon: "RDNT"},
	"MAGIC":       {Name: "مجیک", Icon: "MAGIC"},
	"T":           {Name: "تراشولد", Icon: "T"},
	"NOT":         {Name: "نوتیون", Icon: "NOT"},
	"CVX":         {Name: "کانوکس", Icon: "CVX"},
	"XTZ":         {Name: "تزوس", Icon: "XTZ"},
	"FIL":         {Name: "فایل کوین", Icon: "FIL"},
	"UMA":         {Name: "یو ام ای", Icon: "UMA"},
	"1B_BABYDOGE": {Name: "بیبی دوج", Icon: "BABYDOGE"},
	"SSV":         {Name: "اس اس وی", Icon: "SSV"},
	"DAO":         {Name: "دائو میکر", Icon: "DAO"},
	"BLUR":        {Name: "بلور", Icon: "BLUR"},
	"EGALA":       {Name: "ایگالا", Icon: "EGALA"},
	"GMX":         {Name: "جی ام ایکس", Icon: "GMX"},
	"FLOW":        {Name: "فلو", Icon: "FLOW"},
	"W":           {Name: "رپد", Icon: "W"},
	"CVC":         {Name: "سیویک", Icon: "CVC"},
	"NMR":         {Name: "نیومرایر", Icon: "NMR"},
	"SKL":         {Name: "اسکیل", Icon: "SKL"},
	"SNT":         {Name: "استاتوس", Icon: "SNT"},
	"BAT":         {Name: "بیسیک اتنشن توکن", Icon: "BAT"},
	"TRB":         {Name: "تلور", Icon: "TRB"},
	"WLD":         {Name: "ورلد کوین", Icon: "WLD"},
	"YFI":         {Name: "یرن فایننس", Icon: "YFI"},
	"QNT":         {Name: "کوانت", Icon: "QNT"},
	"FET":         {Name: "فتچ", Icon: "FET"},
	"AGIX":        {Name: "سینگولاریتی نت", Icon: "AGIX"},
	"LPT":         {Name: "لیوپیر", Icon: "LPT"},
	"SLP":         {Name: "اسموث لاو پوشن", Icon: "SLP"},
	"MEME":        {Name: "میم کوین", Icon: "MEME"},
	"BAL":         {Name: "بالانسر", Icon: "BAL"},
	"TON":         {Name: "تون کوین", Icon: "TON"},
	"SNX":         {Name: "سینتتیکس", Icon: "SNX"},
	"1INCH":       {Name: "وان اینچ", Icon: "1INCH"},
	"RNDR":        {Name: "رندر", Icon: "RNDR"},
	"AGLD":        {Name: "ادونچر گلد", Icon: "AGLD"},
	"NEAR":        {Name: "نیر پروتکل", Icon: "NEAR"},
	"WOO":         {Name: "وو نتورک", Icon: "WOO"},
	"MDT":         {Name: "میزورابل دیتا توکن", Icon: "MDT"},
	"LRC":         {Name: "لوپرینگ", Icon: "LRC"},
	"BICO":        {Name: "بیکانومی", Icon: "BICO"},
	"1M_PEPE":     {Name: "پپه", Icon: "PEPE"},
	"ETHFI":       {Name: "اتریوم فای", Icon: "ETHFI"},
	"APE":         {Name: "اپ کوین", Icon: "APE"},
	"1M_NFT":      {Name: "ان اف تی", Icon: "NFT"},
	"ARB":         {Name: "آربیتروم", Icon: "ARB"},
	"CELR":        {Name: "سلر نتورک", Icon: "CELR"},
	"DYDX":        {Name: "دیدکس", Icon: "DYDX"},
	"JST":         {Name: "جاست", Icon: "JST"},
	"ZRX":         {Name: "زیرو ایکس", Icon: "ZRX"},
	"ALGO":        {Name: "الگوراند", Icon: "ALGO"},
	"MASK":        {Name: "ماسک نتورک", Icon: "MASK"},
	"OMG":         {Name: "او ام جی", Icon: "OMG"},
	"ENJ":         {Name: "انجین کوین", Icon: "ENJ"},
}

// Info returns display metadata for a base asset. Unknown assets get a
// synthesized entry naming the symbol itself, so rendering never fails.
func Info(base string) CryptoInfo {
	base = strings.ToUpper(strings.TrimSpace(base))
	if info, ok := cryptoInfo[base]; ok {
		return info
	}
	return CryptoInfo{Name: base, Icon: base}
}
