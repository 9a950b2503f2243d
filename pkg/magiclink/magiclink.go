package magiclink

import (
	"errors"
	"time"

	"go-appointment-booking/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose scopes a magic-link token to one action.
type Purpose string

const (
	PurposeConfirmBooking Purpose = "confirm_booking"
	PurposeCancelBooking  Purpose = "cancel_booking"
)

type Claims struct {
	BookingID uuid.UUID `json:"booking_id"`
	Email     string    `json:"email"`
	Purpose   Purpose   `json:"purpose"`
	jwt.RegisteredClaims
}

// Service issues and validates the signed tokens embedded in customer
// magic-link emails. Possession of a valid token is what authorizes the
// confirm/cancel action; customers hold no account credentials.
type Service struct {
	config config.MagicLinkConfig
}

func NewService(cfg config.MagicLinkConfig) *Service {
	return &Service{config: cfg}
}

func (s *Service) GenerateToken(bookingID uuid.UUID, email string, purpose Purpose) (string, error) {
	claims := Claims{
		BookingID: bookingID,
		Email:     email,
		Purpose:   purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *Service) ValidateToken(tokenString string, purpose Purpose) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Purpose != purpose {
		return nil, errors.New("token purpose mismatch")
	}

	return claims, nil
}
