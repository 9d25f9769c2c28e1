package recipe

// Severity grades a user-visible notice.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// Notice is a transient message for the user.
type Notice struct {
	Severity Severity
	Message  string
}

// Notifier delivers notices to whatever presentation layer is attached.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Notices collects notices in order. The zero value is ready to use.
type Notices struct {
	list []Notice
}

func (c *Notices) Notify(n Notice) { c.list = append(c.list, n) }

// Drain returns the collected notices and resets the collector.
func (c *Notices) Drain() []Notice {
	out := c.list
	c.list = nil
	return out
}

// Last returns the most recent notice, if any.
func (c *Notices) Last() (Notice, bool) {
	if len(c.list) == 0 {
		return Notice{}, false
	}
	return c.list[len(c.list)-1], true
}

type discard struct{}

func (discard) Notify(Notice) {}

// User-facing notice texts.
const (
	msgRepaired       = "Data issues detected and fixed automatically"
	msgCorrupted      = "Data corrupted. Reset to default recipes."
	msgLoadFallback   = "Error loading recipes. Using default recipes."
	msgLoadFailed     = "Unable to read saved recipes. Please try again."
	msgStorageFull    = "Storage is full. Please delete some recipes to save new ones."
	msgStorageLimit   = "Storage limit exceeded. Please delete some recipes."
	msgSaveFailed     = "Failed to save recipe. Please try again."
	msgNotFound       = "Recipe not found. It may have been deleted."
	msgAlreadyDeleted = "Recipe not found. It may have already been deleted."
)
