package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Faker produces Saudi-locale (Arabic script) personal and address data.
// It owns no uniqueness state; see UniqueRegistry.
type Faker struct {
	rand *rand.Rand
}

func NewFaker(r *rand.Rand) *Faker {
	return &Faker{rand: r}
}

var (
	maleFirstNames = []string{
		"محمد", "أحمد", "عبدالله", "خالد", "فهد", "سعود", "عبدالرحمن", "فيصل", "سلطان", "ناصر",
		"تركي", "عمر", "علي", "يوسف", "ماجد", "بندر", "نايف", "سعد", "إبراهيم", "حمد",
	}
	femaleFirstNames = []string{
		"نورة", "سارة", "فاطمة", "مريم", "ريم", "هيفاء", "لطيفة", "منيرة", "عبير", "أمل",
		"هند", "جواهر", "دانة", "لمى", "رهف", "شهد", "العنود", "نوف", "بشرى", "أسماء",
	}
	lastNames = []string{
		"الحربي", "القحطاني", "الغامدي", "الزهراني", "العتيبي", "الدوسري", "الشهري", "المطيري",
		"الشمري", "العنزي", "السبيعي", "الرشيدي", "البقمي", "الشهراني", "العمري", "المالكي",
	}
	cities = []string{
		"الرياض", "جدة", "مكة المكرمة", "المدينة المنورة", "الدمام", "الخبر", "الطائف", "تبوك",
		"بريدة", "أبها", "حائل", "نجران", "جازان", "ينبع", "الأحساء", "القطيف",
	}
	states = []string{
		"منطقة الرياض", "منطقة مكة المكرمة", "منطقة المدينة المنورة", "المنطقة الشرقية", "منطقة القصيم",
		"منطقة عسير", "منطقة تبوك", "منطقة حائل", "منطقة الحدود الشمالية", "منطقة جازان",
		"منطقة نجران", "منطقة الباحة", "منطقة الجوف",
	}
	streets = []string{
		"طريق الملك فهد", "شارع العليا", "طريق الملك عبدالعزيز", "شارع التحلية", "شارع الأمير سلطان",
		"طريق الأمير محمد بن سلمان", "شارع الستين", "شارع الخليج", "طريق المدينة", "شارع الملك خالد",
	}
	districts = []string{
		"النخيل", "الملز", "السليمانية", "الروضة", "الشفا", "الحمراء", "الفيصلية", "النسيم", "العزيزية", "الياسمين",
	}
	countries = []string{
		"السعودية", "الإمارات العربية المتحدة", "الكويت", "البحرين", "قطر", "عمان", "مصر", "الأردن",
		"المغرب", "تونس", "لبنان", "اليمن", "السودان", "باكستان", "الهند",
	}
	words = []string{
		"خدمة", "حساب", "بنك", "تحويل", "رصيد", "مبلغ", "شهري", "عميل", "فاتورة", "دفعة",
		"سداد", "إيداع", "بطاقة", "فرع", "قرض", "راتب", "مصروفات", "شراء", "متجر", "رسوم",
		"اشتراك", "كهرباء", "مياه", "اتصالات", "إيجار", "تأمين", "سفر", "مطعم", "وقود", "مدرسة",
	}
	latinFirstNames = []string{
		"mohammed", "ahmed", "abdullah", "khalid", "fahad", "saud", "faisal", "omar", "ali", "yousef",
		"noura", "sara", "fatima", "maryam", "reem", "haifa", "hind", "dana", "lama", "nouf",
	}
	latinLastNames = []string{
		"alharbi", "alqahtani", "alghamdi", "alzahrani", "alotaibi", "aldosari", "alshehri", "almutairi",
		"alshammari", "alanazi", "alsubaie", "alrashidi",
	}
	freeEmailDomains = []string{"gmail.com", "hotmail.com", "yahoo.com", "outlook.com"}
)

func (f *Faker) pick(list []string) string {
	return list[f.rand.Intn(len(list))]
}

// Choice picks one element of a fixed vocabulary uniformly.
func (f *Faker) Choice(list []string) string {
	return f.pick(list)
}

func (f *Faker) FirstName(gender string) string {
	if gender == GenderFemale {
		return f.pick(femaleFirstNames)
	}
	return f.pick(maleFirstNames)
}

func (f *Faker) LastName() string {
	return f.pick(lastNames)
}

func (f *Faker) City() string {
	return f.pick(cities)
}

func (f *Faker) State() string {
	return f.pick(states)
}

func (f *Faker) Country() string {
	return f.pick(countries)
}

func (f *Faker) Postcode() string {
	return fmt.Sprintf("%05d", f.rand.Intn(90000)+10000)
}

func (f *Faker) Address() string {
	return fmt.Sprintf("%d %s، حي %s، %s %s",
		f.rand.Intn(9000)+1000, f.pick(streets), f.pick(districts), f.City(), f.Postcode())
}

func (f *Faker) PhoneNumber() string {
	if f.rand.Intn(2) == 0 {
		return fmt.Sprintf("05%d%07d", f.rand.Intn(10), f.rand.Intn(10000000))
	}
	return fmt.Sprintf("+9665%d%07d", f.rand.Intn(10), f.rand.Intn(10000000))
}

func (f *Faker) Email() string {
	first := f.pick(latinFirstNames)
	last := f.pick(latinLastNames)
	domain := f.pick(freeEmailDomains)
	switch f.rand.Intn(3) {
	case 0:
		return fmt.Sprintf("%s.%s@%s", first, last, domain)
	case 1:
		return fmt.Sprintf("%s_%s%d@%s", first, last, f.rand.Intn(100), domain)
	default:
		return fmt.Sprintf("%s%d@%s", first, f.rand.Intn(1000), domain)
	}
}

// NationalID is a 10-digit Saudi citizen identifier (leading 1).
func (f *Faker) NationalID() string {
	return fmt.Sprintf("1%09d", f.rand.Intn(1000000000))
}

func (f *Faker) Sentence(nbWords int) string {
	if nbWords < 1 {
		nbWords = 1
	}
	// variable length: +/-40% around nbWords
	n := nbWords
	if spread := nbWords * 4 / 10; spread > 0 {
		n = nbWords - spread + f.rand.Intn(2*spread+1)
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.pick(words)
	}
	return strings.Join(parts, " ") + "."
}

func (f *Faker) Float(min, max float64) float64 {
	return min + f.rand.Float64()*(max-min)
}

// Decimal samples uniformly in [min, max] and rounds to places.
func (f *Faker) Decimal(min, max float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(f.Float(min, max)).Round(places)
}

func (f *Faker) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rand.Intn(max-min+1)
}

// Chance reports true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.rand.Float64() < p
}

// DateBetween samples a calendar day uniformly from [start, end]. An inverted
// range collapses to start.
func (f *Faker) DateBetween(start, end civil.Date) civil.Date {
	days := end.DaysSince(start)
	if days <= 0 {
		return start
	}
	return start.AddDays(f.rand.Intn(days + 1))
}

// DateTimeBetween samples an instant uniformly from [start, end] at second precision.
func (f *Faker) DateTimeBetween(start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	if span <= 0 {
		return start.Truncate(time.Second)
	}
	return start.Add(time.Duration(f.rand.Int63n(span+1)) * time.Second).Truncate(time.Second)
}

// DateOfBirth samples a birthday for someone aged [minAge, maxAge] on today.
func (f *Faker) DateOfBirth(today civil.Date, minAge, maxAge int) civil.Date {
	return f.DateBetween(earliestBirthday(today, maxAge), yearsBefore(today, minAge))
}

// yearsBefore moves back whole years; Feb 29 lands on Feb 28.
func yearsBefore(d civil.Date, years int) civil.Date {
	t := d.In(time.UTC).AddDate(-years, 0, 0)
	if t.Day() != d.Day {
		t = t.AddDate(0, 0, -t.Day())
	}
	return civil.DateOf(t)
}

// earliestBirthday is the first day on which a person is still maxAge on today.
func earliestBirthday(today civil.Date, maxAge int) civil.Date {
	return yearsBefore(today, maxAge+1).AddDays(1)
}
