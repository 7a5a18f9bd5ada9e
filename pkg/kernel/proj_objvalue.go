package kernel

type CompanyName string

func (c CompanyName) String() string { return string(c) }
func (c CompanyName) IsEmpty() bool  { return string(c) == "" }

type JobTitle string

func (j JobTitle) String() string { return string(j) }

// Currency monedas soportadas para salarios
type Currency string

const (
	// CurrencyUSD - dólares americanos
	CurrencyUSD Currency = "USD"

	// CurrencyPEN - soles peruanos
	CurrencyPEN Currency = "PEN"
)

// IsValid valida que la moneda sea una de las soportadas
func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyPEN
}

// SalaryRateType indica la periodicidad del salario declarado
type SalaryRateType string

const (
	SalaryRateMonthly SalaryRateType = "monthly"
	SalaryRateHourly  SalaryRateType = "hourly"
)

// IsValid valida el tipo de tarifa
func (t SalaryRateType) IsValid() bool {
	return t == SalaryRateMonthly || t == SalaryRateHourly
}

// GetDisplayName retorna el nombre legible del tipo de tarifa
func (t SalaryRateType) GetDisplayName() string {
	switch t {
	case SalaryRateMonthly:
		return "Mensual"
	case SalaryRateHourly:
		return "Por hora"
	default:
		return "Desconocido"
	}
}

type StoragePath string

func (s StoragePath) String() string { return string(s) }
