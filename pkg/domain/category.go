package domain

// Category is a transaction category from the fixed vocabulary.
type Category string

const (
	CategorySalary        Category = "Salary"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryRent          Category = "Rent"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryDebt          Category = "Debt"
	CategoryPersonal      Category = "Personal"
	CategorySaving        Category = "Saving"
	CategorySupport       Category = "Support"
	CategoryInvestment    Category = "Investment"
	CategoryTogether      Category = "Together"
	CategoryOther         Category = "Other"
)

// Categories lists the full vocabulary in display order.
var Categories = []Category{
	CategorySalary,
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryRent,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealth,
	CategoryDebt,
	CategoryPersonal,
	CategorySaving,
	CategorySupport,
	CategoryInvestment,
	CategoryTogether,
	CategoryOther,
}

// IsValid reports whether c belongs to the fixed vocabulary.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FundBucket is one of the five pools money can sit in. The zero value is
// the general pool.
type FundBucket int

const (
	BucketGeneral FundBucket = iota
	BucketSaving
	BucketSupport
	BucketInvestment
	BucketTogether
)

// FundBuckets lists the four named funds, excluding the general pool.
var FundBuckets = []FundBucket{BucketSaving, BucketSupport, BucketInvestment, BucketTogether}

func (b FundBucket) String() string {
	switch b {
	case BucketSaving:
		return "Saving"
	case BucketSupport:
		return "Support"
	case BucketInvestment:
		return "Investment"
	case BucketTogether:
		return "Together"
	default:
		return "General"
	}
}

// IsFund reports whether b is one of the four named funds.
func (b FundBucket) IsFund() bool {
	return b != BucketGeneral
}

// Classify maps a category to its fund bucket. Any category outside the four
// fund names, including unknown strings, lands in the general pool so that
// money is never silently lost.
func Classify(c Category) FundBucket {
	switch c {
	case CategorySaving:
		return BucketSaving
	case CategorySupport:
		return BucketSupport
	case CategoryInvestment:
		return BucketInvestment
	case CategoryTogether:
		return BucketTogether
	default:
		return BucketGeneral
	}
}

// ParseFund maps a fund name to its bucket; empty or unknown names mean the
// general pool (no fund).
func ParseFund(name string) FundBucket {
	return Classify(Category(name))
}

// categoryNames maps category → display name per language.
var categoryNames = map[string]map[Category]string{
	"en": {
		CategorySalary:        "Salary",
		CategoryFood:          "Food",
		CategoryTransport:     "Transport",
		CategoryShopping:      "Shopping",
		CategoryBills:         "Bills",
		CategoryRent:          "Rent",
		CategoryUtilities:     "Utilities",
		CategoryEntertainment: "Entertainment",
		CategoryHealth:        "Health",
		CategoryDebt:          "Debt",
		CategoryPersonal:      "Personal",
		CategorySaving:        "Saving",
		CategorySupport:       "Support",
		CategoryInvestment:    "Investment",
		CategoryTogether:      "Together",
		CategoryOther:         "Other",
	},
	"vi": {
		CategorySalary:        "Lương",
		CategoryFood:          "Ăn uống",
		CategoryTransport:     "Di chuyển",
		CategoryShopping:      "Mua sắm",
		CategoryBills:         "Hóa đơn",
		CategoryRent:          "Tiền nhà",
		CategoryUtilities:     "Điện nước",
		CategoryEntertainment: "Giải trí",
		CategoryHealth:        "Sức khỏe",
		CategoryDebt:          "Nợ",
		CategoryPersonal:      "Cá nhân",
		CategorySaving:        "Tiết kiệm",
		CategorySupport:       "Hỗ trợ",
		CategoryInvestment:    "Đầu tư",
		CategoryTogether:      "Chung",
		CategoryOther:         "Khác",
	},
}

// DisplayName returns the localized name for c, falling back to the raw
// category string for unknown languages or categories.
func (c Category) DisplayName(lang string) string {
	if names, ok := categoryNames[lang]; ok {
		if name, ok := names[c]; ok {
			return name
		}
	}
	return string(c)
}
