package utils

import (
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// SessionDuration is how long a login stays valid, both for the token and
// the cookie that carries it.
const SessionDuration = 7 * 24 * time.Hour

func GenerateJWT(userID uint, email string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId": userID,
        "email":  email,
        "exp":    time.Now().Add(SessionDuration).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
