package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un hash bcrypt con salt aleatorio.
// Dos llamadas con el mismo password producen digests distintos,
// pero ambos verifican contra el mismo texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify comprueba un password contra su digest.
// Devuelve false tanto si no coincide como si el digest está malformado;
// nunca propaga el error de bcrypt al caller.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
