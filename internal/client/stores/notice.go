package stores

// NoticeKind tags the single mutation-outcome slot of a store.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeError
	NoticeSuccess
)

// Notice is the outcome of the most recent mutation attempt. A store holds at
// most one notice, so an error and a success message can never be presented
// at the same time.
type Notice struct {
	Kind NoticeKind
	Text string
}

func errNotice(text string) Notice {
	return Notice{Kind: NoticeError, Text: text}
}

func successNotice(text string) Notice {
	return Notice{Kind: NoticeSuccess, Text: text}
}
