package middleware

import (
	"net/http"

	"identity-market/src/model"

	"github.com/gin-gonic/gin"
)

const (
	accountHeader     = "X-Account"
	callerContextKey  = "caller_account"
	allowedOriginsAll = "*"
)

// RequireAccount extracts the caller's wallet address from the
// X-Account header. The wallet-connection layer authenticates the
// address upstream; the core only needs to know who is calling.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.GetHeader(accountHeader)
		if account == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + accountHeader + " header",
			})
			return
		}

		c.Set(callerContextKey, model.Account(account))
		c.Next()
	}
}

// CallerAccount reads the account set by RequireAccount. Empty for
// routes outside the account-guarded group.
func CallerAccount(c *gin.Context) model.Account {
	if v, ok := c.Get(callerContextKey); ok {
		return v.(model.Account)
	}
	return ""
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOriginsAll)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Account")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
