package response

type MetaSuccess struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Code    int         `json:"-"`
}

type MetaError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"-"`
	Err     error  `json:"-"`
}

func (m *MetaError) Error() string {
	return m.Message
}
