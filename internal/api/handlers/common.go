package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

// ok writes {"success": true, ...payload}.
func ok(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = true
	c.JSON(status, payload)
}

// writeError writes {"success": false, "code", "error", ...meta}. Internal failures are
// attached to the context for the request logger and never echoed.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	body := gin.H{}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		for k, v := range ae.Meta {
			body[k] = v
		}
		body["code"] = ae.Code
		body["error"] = ae.Message
		if ae.Message == "" {
			body["error"] = http.StatusText(status)
		}
	} else {
		body["code"] = utils.CodeInternal
		body["error"] = http.StatusText(status)
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	body["success"] = false
	c.AbortWithStatusJSON(status, body)
}

// bindJSON reports the first failing field as INVALID_ARGUMENT.
func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, bindMessage(err), err))
		return false
	}
	return true
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := jsonName(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "oneof":
			return field + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
		default:
			return field + " is invalid"
		}
	}
	return "invalid request body"
}

// jsonName turns a Go field name such as UserID into user_id.
func jsonName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// requireQuery reads a mandatory query parameter.
func requireQuery(c *gin.Context, op, key string) (string, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, key+" is required", nil))
		return "", false
	}
	return v, true
}
