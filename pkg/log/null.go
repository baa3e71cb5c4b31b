package log

// null discards everything logged to it.
type null struct{}

func (null) Infof(string, ...interface{})  {}
func (null) Errorf(string, ...interface{}) {}
func (null) Debugf(string, ...interface{}) {}

// NewNullLogger returns a Logger that discards everything. It is the
// default of engines created without a logger.
func NewNullLogger() Logger { return null{} }
