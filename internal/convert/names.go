package convert

// displayNames maps currency codes to the Persian names used in replies.
var displayNames = map[string]string{
	"USD":   "دلار",
	"EUR":   "یورو",
	"GBP":   "پوند",
	"AED":   "درهم",
	"TRY":   "لیر",
	"TOMAN": "تومان",
	"IRR":   "ریال",
	"CAD":   "دلار کانادا",
	"AUD":   "دلار استرالیا",
	"NZD":   "دلار نیوزیلند",
	"CHF":   "فرانک سوئیس",
	"JPY":   "ین ژاپن",
	"CNY":   "یوان چین",
	"RUB":   "روبل روسیه",
	"INR":   "روپیه هند",
	"KRW":   "وون کره جنوبی",

	"SAR": "ریال سعودی",
	"QAR": "ریال قطر",
	"OMR": "ریال عمان",
	"BHD": "دینار بحرین",
	"KWD": "دینار کویت",
	"IQD": "دینار عراق",
	"SYP": "لیره سوریه",
	"LBP": "لیره لبنان",
	"JOD": "دینار اردن",
	"YER": "ریال یمن",
	"AFN": "افغانی",
	"PKR": "روپیه پاکستان",

	"BDT": "تاکا بنگلادش",
	"LKR": "روپیه سریلانکا",
	"NPR": "روپیه نپال",
	"IDR": "روپیه اندونزی",
	"MYR": "رینگیت مالزی",
	"SGD": "دلار سنگاپور",
	"THB": "بات تایلند",
	"VND": "دونگ ویتنام",
	"PHP": "پزوی فیلیپین",

	"EGP": "پوند مصر",
	"ZAR": "رند آفریقای جنوبی",
	"DZD": "دینار الجزایر",
	"MAD": "درهم مراکش",
	"TND": "دینار تونس",
	"NGN": "نایرا نیجریه",
	"GHS": "سدی غنا",

	"BRL": "رئال برزیل",
	"MXN": "پزوی مکزیک",
	"ARS": "پزوی آرژانتین",
	"CLP": "پزوی شیلی",
	"COP": "پزوی کلمبیا",
	"PEN": "سول پرو",

	"BTC":  "بیت کوین",
	"ETH":  "اتریوم",
	"USDT": "تتر",
	"BNB":  "بایننس کوین",
	"ADA":  "کاردانو",
	"XRP":  "ریپل",
	"DOGE": "دوج کوین",
	"DOT":  "پولکادات",
	"SOL":  "سولانا",
	"SHIB": "شیبا اینو",
	"LTC":  "لایت کوین",

	"XAU": "انس طلا",
	"XAG": "انس نقره",
	"XPT": "انس پلاتین",
	"XPD": "انس پالادیوم",
}

// DisplayName returns the Persian name for a code, or the code itself
// when no name is known.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return code
}
