package auth

import (
	"github.com/gin-gonic/gin"
)

// ActorContextKey is the gin context key holding the request Actor
const ActorContextKey = "actor"

// Actor identifies who performs a request. The zero value is anonymous.
type Actor struct {
	ID       uint
	Username string
	Email    string
}

// Anonymous is the actor used for requests without credentials
var Anonymous = Actor{}

// IsAuthenticated reports whether the actor is a known user
func (a Actor) IsAuthenticated() bool {
	return a.ID != 0
}

// SetActor stores the actor on the gin context
func SetActor(c *gin.Context, actor Actor) {
	c.Set(ActorContextKey, actor)
	c.Set("username", actor.Username)
}

// ActorFromContext returns the request actor, or Anonymous when none was set
func ActorFromContext(c *gin.Context) Actor {
	value, exists := c.Get(ActorContextKey)
	if !exists {
		return Anonymous
	}
	actor, ok := value.(Actor)
	if !ok {
		return Anonymous
	}
	return actor
}
