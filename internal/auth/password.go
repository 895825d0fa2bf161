package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword хеширует пароль bcrypt'ом с заданным фактором стоимости.
// Стоимость вне допустимого диапазона bcrypt заменяется на DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword возвращает true, если пароль совпадает с сохранённым хешем.
// Любое несоответствие, включая битый хеш, — просто false, без ошибки.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
