package middleware

import (
	"errors"
	"net/http"
	"strings"

	"app/internal/config"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey    = "user_id"    // int64
	CtxSubjectKey   = "subject"    // string（IdPのsub）
	CtxUserEmailKey = "user_email" // string
	CtxUserRoleKey  = "user_role"  // string（IdPのroleクレーム、無ければ空）
)

// 外部IdPが発行したHS256トークンの検証ミドルウェア。
// 認証そのもの（ログイン・セッション）はIdP側。ここは検証とユーザー紐付けだけ。
func AuthToken(cfg config.Config, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.AuthJWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//claimsを取り出す
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//subject（IdPのユーザーID）を取り出す
			subject, err := parseString(claims["sub"])
			if err != nil || subject == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//email（無いIdPもあるので空は許す）
			email, _ := parseString(claims["email"])

			//role（スタッフ操作の判定に使う。一般顧客は空）
			role, _ := parseString(claims["role"])

			//ローカルユーザーに紐付け（初見なら作る）
			u, err := users.GetOrCreateBySubject(c.Request().Context(), subject, email)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			//contextへ保存
			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxSubjectKey, subject)
			c.Set(CtxUserEmailKey, u.Email)
			c.Set(CtxUserRoleKey, role)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
