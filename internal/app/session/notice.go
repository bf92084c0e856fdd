package session

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notice is the content of the single notification slot. Seq grows with
// every replacement so a view can tell a repeat message from a new one.
type Notice struct {
	Message  string
	Severity Severity
	Seq      uint64
}

type noticeSlot struct {
	current Notice
	set     bool
	seq     uint64
}

func (n *noticeSlot) show(sev Severity, msg string) Notice {
	n.seq++
	n.current = Notice{Message: msg, Severity: sev, Seq: n.seq}
	n.set = true
	return n.current
}

func (n *noticeSlot) get() (Notice, bool) {
	return n.current, n.set
}

func (n *noticeSlot) dismiss() {
	n.current = Notice{}
	n.set = false
}
