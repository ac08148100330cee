package bot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"arzbot/internal/convert"
	"arzbot/internal/numeric"
	"arzbot/internal/resolve"
	"arzbot/models"
)

// Trigger words that turn an otherwise unmatched message into a help
// reply instead of silence.
var triggers = []string{"تبدیل", "convert", "تبدیل_ارز", "currency_convert"}

var (
	// amount, currency, به/to, currency. Amounts may group thousands
	// with "," or "٬"; currency tokens may span words so country
	// qualifiers reach the resolver intact.
	conversionPattern = regexp.MustCompile(`([\d۰-۹]+(?:[,٬][\d۰-۹]{3})*(?:[.٫][\d۰-۹]+)?)\s*([a-zA-Z\x{0600}-\x{06FF}][a-zA-Z\x{0600}-\x{06FF}\s]*?)\s+(?:به|to)\s+([a-zA-Z\x{0600}-\x{06FF}][a-zA-Z\x{0600}-\x{06FF}\s]*)`)

	// amount and currency only; the target defaults to Toman.
	simplePattern = regexp.MustCompile(`([\d۰-۹]+(?:[,٬][\d۰-۹]{3})*(?:[.٫][\d۰-۹]+)?)\s*([a-zA-Z\x{0600}-\x{06FF}][a-zA-Z\x{0600}-\x{06FF}\s]*)`)

	// Messages that are nothing but digits and number formatting.
	onlyNumbersPattern = regexp.MustCompile(`^[\d۰-۹\s.,٫٬]+$`)

	// Persian decimal and thousands marks, normalized before parsing.
	amountMarks = strings.NewReplacer("٫", ".", "٬", ",")
)

const pricesUnavailableMsg = "متاسفانه در حال حاضر امکان دریافت اطلاعات نرخ ارز وجود ندارد. ❌"

const conversionHelp = `💱 <b>راهنمای تبدیل ارز</b>

مقدار و نام ارز را بنویسید تا به تومان تبدیل شود:
<code>100 دلار</code>

برای تبدیل بین دو ارز از «به» یا «to» استفاده کنید:
<code>100 دلار به یورو</code>
<code>500 euro to toman</code>

ارقام فارسی هم پذیرفته می‌شوند: <code>۱۰۰٬۰۰۰ تومان به دلار</code>`

func hasTrigger(text string) bool {
	lower := strings.ToLower(text)
	for _, trigger := range triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// BuildConversionReply runs the free-text conversion pipeline over one
// message. ok is false when the bot should stay silent: pure-number
// messages, texts that are not conversion requests, and requests naming
// currencies nobody can resolve.
func BuildConversionReply(text string, snap *models.PriceSnapshot) (string, bool) {
	text = strings.TrimSpace(text)

	if onlyNumbersPattern.MatchString(text) && !hasTrigger(text) {
		return "", false
	}

	var amountStr, fromToken, toToken string
	if m := conversionPattern.FindStringSubmatch(text); m != nil {
		amountStr, fromToken, toToken = m[1], m[2], m[3]
	} else if m := simplePattern.FindStringSubmatch(text); m != nil {
		amountStr, fromToken = m[1], m[2]
		toToken = "تومان"
	} else {
		if hasTrigger(text) {
			return conversionHelp, true
		}
		return "", false
	}

	amount, err := numeric.ParseAmount(amountMarks.Replace(amountStr))
	if err != nil {
		if errors.Is(err, numeric.ErrTooLarge) {
			return fmt.Sprintf("❌ مقدار وارد شده بسیار بزرگ است. لطفاً عددی کمتر از %s وارد کنید.",
				numeric.FormatNumber(numeric.MaxAmount)), true
		}
		return "❌ مقدار وارد شده معتبر نیست. لطفاً یک عدد معتبر وارد کنید.", true
	}

	fromCode, ok := resolve.Resolve(fromToken)
	if !ok {
		return "", false
	}
	toCode, ok := resolve.Resolve(toToken)
	if !ok {
		return "", false
	}

	if snap == nil {
		return pricesUnavailableMsg, true
	}

	res, err := convert.Convert(amount, fromCode, toCode, snap)
	if err != nil {
		// Unpriced currencies are ignored the same way unresolved ones are.
		return "", false
	}

	lastUpdate := snap.LastUpdate
	if lastUpdate == "" {
		lastUpdate = "نامشخص"
	}

	return fmt.Sprintf(`💱 <b>تبدیل ارز</b>

<b>%s %s</b> = <b>%s %s</b>

📊 نرخ تبدیل: <b>1 %s = %s %s</b>
⏱ آخرین بروزرسانی: %s`,
		numeric.DisplayAmount(amount), res.FromName,
		numeric.DisplayAmount(res.Amount), res.ToName,
		res.FromName, numeric.DisplayRate(res.Rate()), res.ToName,
		lastUpdate,
	), true
}
