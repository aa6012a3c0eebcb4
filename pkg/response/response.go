package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lungtracker-srv/pkg/discord"
	"lungtracker-srv/pkg/errors"
)

// OK renders a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   "Success",
		Data:      data,
	})
}

// Unauthorized renders a generic 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Error renders an error response. HTTPError values use their own status code;
// anything else is treated as an internal error and reported to Discord.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Internal error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}

// PanicError renders a 500 for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}
