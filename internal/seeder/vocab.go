package seeder

const (
	GenderMale   = "ذكر"
	GenderFemale = "أنثى"

	AccountActive = "نشط"

	TransactionTransfer = "تحويل"

	LoanActive    = "نشط"
	LoanPaidOff   = "مدفوع بالكامل"
	LoanDefaulted = "متعثر"
)

var (
	genders = []string{GenderMale, GenderFemale}
	idTypes = []string{"بطاقة هوية وطنية", "جواز سفر"}

	positions = []string{
		"صراف", "مسؤول خدمة عملاء", "مدير فرع", "مسؤول ائتمان",
		"مسؤول دعم فني", "محاسب", "مدير حسابات", "محلل مالي",
	}
	departments = []string{
		"العمليات", "خدمة العملاء", "الإدارة", "الائتمان", "الدعم الفني", "المحاسبة", "المالية",
	}
	managementTitles = []string{
		"الرئيس التنفيذي", "المدير المالي", "رئيس قسم العمليات", "رئيس قسم الموارد البشرية", "رئيس قسم التكنولوجيا",
	}

	accountTypes = []string{"توفير", "جاري", "استثمار"}
	currencies   = []string{"SAR", "USD", "EUR"}

	transactionTypes    = []string{"إيداع", "سحب", TransactionTransfer, "دفع فواتير"}
	transactionStatuses = []string{"ناجحة", "فاشلة", "معلقة"}

	loanTypes    = []string{"شخصي", "عقاري", "سيارة", "تعليمي"}
	loanStatuses = []string{LoanActive, LoanPaidOff, LoanDefaulted}
	loanTerms    = []int{12, 24, 36, 48, 60, 72, 84, 96, 108, 120, 180, 240, 360}
)

// Numeric ranges and windows.
const (
	customerMinAge       = 18
	customerMaxAge       = 70
	customerHistoryYears = 10

	employeeMinAge       = 22
	employeeMaxAge       = 60
	employeeHistoryYears = 15
	salaryMin            = 4000.0
	salaryMax            = 25000.0

	managementEndChance = 0.2

	maxAccountsPerCustomer = 3
	balanceMin             = 100.0
	balanceMax             = 100000.0

	transactionAmountMin = 10.0
	transactionAmountMax = 5000.0
	descriptionWords     = 6

	loanAmountMin = 5000.0
	loanAmountMax = 500000.0
	loanRateMin   = 0.03
	loanRateMax   = 0.15

	// approximate month used for loan end dates and payment cadence
	daysPerMonth     = 30
	paymentJitterMax = 20
	paymentSpreadMin = 0.8
	paymentSpreadMax = 1.2
	principalMin     = 0.5
	principalMax     = 0.9
)
