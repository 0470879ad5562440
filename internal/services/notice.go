package services

type NoticeKind string

const (
	NoticeInfo       NoticeKind = "info"
	NoticeSuccess    NoticeKind = "success"
	NoticeValidation NoticeKind = "validation"
	NoticeError      NoticeKind = "error"
)

// Notice is the user-facing outcome of an action. The page shows it as a
// toast; nothing waits for the user to dismiss it.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n Notice) IsZero() bool {
	return n == Notice{}
}
