//go:build unit

package api_test

import (
	"strings"

	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth trusts a "role:uuid" bearer token; requests without one reach the
// handler with no actor.
func fakeAuth(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if ok {
		role, id, _ := strings.Cut(token, ":")
		if uid, err := uuid.Parse(id); err == nil {
			middleware.SetActor(c, user.NewActor(uid, user.Role(role)))
		}
	}
	c.Next()
}

func tokenFor(actor user.Actor) string {
	return actor.Role.String() + ":" + actor.UserID.String()
}
