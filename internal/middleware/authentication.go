package middleware

import (
	"emptrack/internal/abstraction"
	"emptrack/internal/config"
	"emptrack/pkg/constant"
	"emptrack/pkg/util/general"
	"emptrack/pkg/util/response"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

func Authentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, meta := parseAuthHeader(c)
		if meta != nil {
			return meta.SendError(c)
		}

		// a revoked login id never comes back, logout pushes it here
		userMustLogout := general.GetRedisUUIDArray(dbRedis, constant.REDIS_KEY_AUTO_LOGOUT)
		if slices.Contains(userMustLogout, auth.UuidLogin) {
			return response.ErrorBuilder(http.StatusUnprocessableEntity, errors.New("unprocessable"), "expired_token").SendError(c)
		}

		cc := c.(*abstraction.Context)
		cc.Auth = auth

		return next(cc)
	}
}

// AdminOnly allows only admin tokens through. It stacks on top of
// Authentication.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := c.(*abstraction.Context)
		if cc.Auth == nil || cc.Auth.Role != constant.ROLE_ADMIN {
			return response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "this role is not permitted").SendError(c)
		}
		return next(cc)
	}
}

func parseAuthHeader(c echo.Context) (*abstraction.AuthContext, *response.MetaError) {
	jwtKey := config.Get().JWT.SecretKey

	authToken := c.Request().Header.Get("Authorization")
	if authToken == "" {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}
	if !strings.Contains(authToken, "Bearer") {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}
	tokenString := strings.Replace(authToken, "Bearer ", "", -1)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method :%v", token.Header["alg"])
		}
		return []byte(jwtKey), nil
	})
	if token == nil || !token.Valid || err != nil {
		if errJWT, ok := err.(*jwt.ValidationError); ok && errJWT.Errors == jwt.ValidationErrorExpired {
			return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), errJWT.Error())
		}
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, err, "error when claim token")
	}

	destructID := claims["id"]
	if destructID == nil {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}
	id, err := strconv.Atoi(fmt.Sprintf("%v", destructID))
	if err != nil {
		// employee tokens carry no admin row id
		id = 0
	}

	empCode := fmt.Sprintf("%v", claims["emp_code"])
	role := fmt.Sprintf("%v", claims["role"])
	uuidLogin := fmt.Sprintf("%v", claims["uuid_login"])
	if empCode == "" || empCode == "<nil>" || role == "" || role == "<nil>" {
		return nil, response.ErrorBuilder(http.StatusUnauthorized, errors.New("unauthorized"), "invalid_token")
	}

	return &abstraction.AuthContext{
		ID:        id,
		EmpCode:   empCode,
		Role:      role,
		UuidLogin: uuidLogin,
	}, nil
}
