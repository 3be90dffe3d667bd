package recipe

import "fmt"

// recorder logs every call it receives into a log shared with its clones.
type recorder struct {
	name string
	log  *[]string
}

func newRecorder(name string) *recorder {
	return &recorder{name: name, log: &[]string{}}
}

func (r *recorder) record(format string, args ...any) {
	*r.log = append(*r.log, r.name+"."+fmt.Sprintf(format, args...))
}

func (r *recorder) AddIngredient(item ItemRef, stack int) {
	r.record("add(%d,%d)", item.Type(), stack)
}

func (r *recorder) RemoveIngredient(item ItemRef) {
	r.record("remove(%d)", item.Type())
}

func (r *recorder) AddDecraftCondition(condition Condition) {
	r.record("decraft(%s)", condition.Description)
}

func (r *recorder) Clone() Recipe {
	r.record("clone")
	return &recorder{name: r.name + "'", log: r.log}
}

func (r *recorder) Register() {
	r.record("register")
}

func (r *recorder) SortAfter(other Recipe) {
	r.record("sortAfter(%s)", other.(*recorder).name)
}

type ironBar struct{}

func (ironBar) Type() int { return 22 }
