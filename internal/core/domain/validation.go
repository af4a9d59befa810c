package domain

// ValidationResult — единственный результат оркестратора проверок.
// Порядок ошибок фиксирован порядком проверок и является контрактом
// для детерминированного отображения на клиенте.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}
}

// AddError добавляет нарушение бизнес-правила.
// Проверки не прерываются на первой ошибке, пользователь получает все причины сразу.
func (r *ValidationResult) AddError(message string) {
	r.Valid = false
	r.Errors = append(r.Errors, message)
}
