package validators

// NormalizeCEP remove tudo que não for dígito ("01310-100" -> "01310100").
func NormalizeCEP(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// IsValidCEP aceita apenas CEPs já normalizados com exatamente 8 dígitos.
func IsValidCEP(cep string) bool {
	if len(cep) != 8 {
		return false
	}
	for i := 0; i < len(cep); i++ {
		if cep[i] < '0' || cep[i] > '9' {
			return false
		}
	}
	return true
}
