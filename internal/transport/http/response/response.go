package response

// Error 错误响应统一为 {"detail": "..."}
type Error struct {
	Detail string `json:"detail"`
}

func NewError(detail string) Error { return Error{Detail: detail} }
