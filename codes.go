package veriform

// Issue codes (exported consts for IDE completion and type safety by
// convention). The set is a closed vocabulary so consumers can key i18n
// tables by code instead of parsing free text. Codes are additive-only:
// removing or renaming one is a breaking change, and no code appears in more
// than one category.
const (
	// Type
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnexpectedKey = "unexpected_key"

	// String
	CodeStringMin     = "string_min"
	CodeStringMax     = "string_max"
	CodeStringLength  = "string_length"
	CodeStringPattern = "string_pattern"
	CodeInvalidEmail  = "invalid_email"
	CodeInvalidURL    = "invalid_url"
	CodeInvalidUUID   = "invalid_uuid"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidJSON   = "invalid_json"
	CodeInvalidBase64 = "invalid_base64"
	CodeInvalidHex    = "invalid_hex"
	CodeInvalidFormat = "invalid_format"

	// Number
	CodeNumberMin      = "number_min"
	CodeNumberMax      = "number_max"
	CodeNumberRange    = "number_range"
	CodeNotInteger     = "not_integer"
	CodeNotPositive    = "not_positive"
	CodeNotNegative    = "not_negative"
	CodeInvalidDivisor = "invalid_divisor"

	// Array
	CodeArrayMin    = "array_min"
	CodeArrayMax    = "array_max"
	CodeArrayLength = "array_length"
	CodeArrayEmpty  = "array_empty"

	// Object
	CodeObjectEmpty = "object_empty"

	// Auth
	CodeInvalidPassword     = "invalid_password"
	CodePasswordTooShort    = "password_too_short"
	CodePasswordNoUppercase = "password_no_uppercase"
	CodePasswordNoLowercase = "password_no_lowercase"
	CodePasswordNoNumber    = "password_no_number"
	CodePasswordNoSpecial   = "password_no_special"
	CodePasswordsDontMatch  = "passwords_dont_match"

	// Financial
	CodeInvalidCreditCard = "invalid_credit_card"
	CodeInvalidIBAN       = "invalid_iban"
	CodeInvalidBIC        = "invalid_bic"
	CodeInvalidCurrency   = "invalid_currency"
	CodeInvalidPrice      = "invalid_price"

	// Network
	CodeInvalidIP       = "invalid_ip"
	CodeInvalidIPv4     = "invalid_ipv4"
	CodeInvalidIPv6     = "invalid_ipv6"
	CodeInvalidHostname = "invalid_hostname"
	CodeInvalidPort     = "invalid_port"
	CodeInvalidMAC      = "invalid_mac"

	// Identity
	CodeInvalidPhone      = "invalid_phone"
	CodeInvalidSSN        = "invalid_ssn"
	CodeInvalidPostalCode = "invalid_postal_code"

	// Custom
	CodeCustom    = "custom"
	CodePredicate = "predicate"
	CodeNarrow    = "narrow"
)

// Category groups codes for documentation and tooling.
type Category string

const (
	CategoryType      Category = "type"
	CategoryString    Category = "string"
	CategoryNumber    Category = "number"
	CategoryArray     Category = "array"
	CategoryObject    Category = "object"
	CategoryAuth      Category = "auth"
	CategoryFinancial Category = "financial"
	CategoryNetwork   Category = "network"
	CategoryIdentity  Category = "identity"
	CategoryCustom    Category = "custom"
)

var codeCategories = map[string]Category{
	CodeInvalidType:   CategoryType,
	CodeRequired:      CategoryType,
	CodeUnexpectedKey: CategoryType,

	CodeStringMin:     CategoryString,
	CodeStringMax:     CategoryString,
	CodeStringLength:  CategoryString,
	CodeStringPattern: CategoryString,
	CodeInvalidEmail:  CategoryString,
	CodeInvalidURL:    CategoryString,
	CodeInvalidUUID:   CategoryString,
	CodeInvalidDate:   CategoryString,
	CodeInvalidJSON:   CategoryString,
	CodeInvalidBase64: CategoryString,
	CodeInvalidHex:    CategoryString,
	CodeInvalidFormat: CategoryString,

	CodeNumberMin:      CategoryNumber,
	CodeNumberMax:      CategoryNumber,
	CodeNumberRange:    CategoryNumber,
	CodeNotInteger:     CategoryNumber,
	CodeNotPositive:    CategoryNumber,
	CodeNotNegative:    CategoryNumber,
	CodeInvalidDivisor: CategoryNumber,

	CodeArrayMin:    CategoryArray,
	CodeArrayMax:    CategoryArray,
	CodeArrayLength: CategoryArray,
	CodeArrayEmpty:  CategoryArray,

	CodeObjectEmpty: CategoryObject,

	CodeInvalidPassword:     CategoryAuth,
	CodePasswordTooShort:    CategoryAuth,
	CodePasswordNoUppercase: CategoryAuth,
	CodePasswordNoLowercase: CategoryAuth,
	CodePasswordNoNumber:    CategoryAuth,
	CodePasswordNoSpecial:   CategoryAuth,
	CodePasswordsDontMatch:  CategoryAuth,

	CodeInvalidCreditCard: CategoryFinancial,
	CodeInvalidIBAN:       CategoryFinancial,
	CodeInvalidBIC:        CategoryFinancial,
	CodeInvalidCurrency:   CategoryFinancial,
	CodeInvalidPrice:      CategoryFinancial,

	CodeInvalidIP:       CategoryNetwork,
	CodeInvalidIPv4:     CategoryNetwork,
	CodeInvalidIPv6:     CategoryNetwork,
	CodeInvalidHostname: CategoryNetwork,
	CodeInvalidPort:     CategoryNetwork,
	CodeInvalidMAC:      CategoryNetwork,

	CodeInvalidPhone:      CategoryIdentity,
	CodeInvalidSSN:        CategoryIdentity,
	CodeInvalidPostalCode: CategoryIdentity,

	CodeCustom:    CategoryCustom,
	CodePredicate: CategoryCustom,
	CodeNarrow:    CategoryCustom,
}

// CategoryOf reports the category a taxonomy code belongs to. The second
// return is false for codes outside the taxonomy (engine passthrough codes).
func CategoryOf(code string) (Category, bool) {
	c, ok := codeCategories[code]
	return c, ok
}

// KnownCode reports whether code belongs to the closed taxonomy.
func KnownCode(code string) bool {
	_, ok := codeCategories[code]
	return ok
}
