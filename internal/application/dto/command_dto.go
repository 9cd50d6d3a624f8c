package dto

// CommandRequest 口令解析请求
type CommandRequest struct {
	Command string `json:"command" form:"command" validate:"required"`
}

// CommandExchangeBody is the signed body of a jComExchange call.
type CommandExchangeBody struct {
	AppCode     string `json:"appCode"`
	Text        string `json:"text"`
	AliveMin    int    `json:"aliveMin"`
	CommandType int    `json:"commandType"`
}
