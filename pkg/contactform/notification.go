package contactform

// Variant selects the visual style of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a toast shown to the visitor.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier displays notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Dialog is the modal hosting the form.
type Dialog interface {
	Close()
}

// Notifications shown by Submit.
var (
	MissingInformation = Notification{
		Title:       "Missing Information",
		Description: "Please fill in all fields before submitting.",
		Variant:     VariantDestructive,
	}
	MessageSent = Notification{
		Title:       "Message Sent!",
		Description: "We'll get back to you soon to confirm your meeting.",
		Variant:     VariantDefault,
	}
	SendFailed = Notification{
		Title:       "Error",
		Description: "Failed to send message. Please try again or contact us directly.",
		Variant:     VariantDestructive,
	}
)

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

type nopDialog struct{}

func (nopDialog) Close() {}
