package apimodels

type Response struct {
	Status  string      `json:"status"`            //fail/success
	Message string      `json:"message,omitempty"` //error message
	Data    interface{} `json:"data,omitempty"`    //response payload
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //total rows matching the filter
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

// ThrottledResponse carries the scope-specific message and the wait hint in seconds.
type ThrottledResponse struct {
	Response
	Wait int64 `json:"wait"`
}

func NewThrottledResponse(message string, waitSec int64) ThrottledResponse {
	return ThrottledResponse{
		Response: Response{
			Status:  "fail",
			Message: message,
		},
		Wait: waitSec,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // rows per page
	Page  int `json:"page"`  // page number (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
