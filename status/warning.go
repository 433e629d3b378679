package status

import (
	"fmt"
	"net/http"
)

var (
	WarnUnknownArticle = fmt.Errorf("no article with that slug")
	WarnEmptyComment   = fmt.Errorf("comment body cannot be empty")
)

func WarningStatusBadRequest(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}

func WarningStatusNotFound(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}
