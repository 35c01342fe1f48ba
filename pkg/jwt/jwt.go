package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken se devuelve cuando el token no se puede verificar (firma, estructura o expiración).
var ErrInvalidToken = errors.New("jwt: token inválido")

// Manager emite y verifica tokens HS256 ligados a un nombre de usuario.
// El secreto se inyecta desde configuración y no cambia después del arranque.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager construye el servicio de tokens. expMinutes define la vigencia de cada token.
func NewManager(secret, issuer string, expMinutes int) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    time.Duration(expMinutes) * time.Minute,
		now:    time.Now,
	}, nil
}

// Generate firma un token con sub=username, iat=ahora y exp=ahora+vigencia.
func (m *Manager) Generate(username string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ExtractSubject verifica el token y devuelve el usuario (sub).
func (m *Manager) ExtractSubject(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Validate es true solo si el sub coincide con username y la expiración es posterior a ahora.
func (m *Manager) Validate(tokenString, username string) bool {
	claims, err := m.parse(tokenString)
	if err != nil {
		return false
	}
	if claims.Subject != username || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.After(m.now())
}

// ExpiresAt devuelve la expiración embebida en el token.
func (m *Manager) ExpiresAt(tokenString string) (time.Time, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

func (m *Manager) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
