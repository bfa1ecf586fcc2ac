package question

// Question is a fully constructed question instance: its spec has been
// validated or generated and every derived field is fixed for the
// instance's lifetime. Concrete types expose their derived values as
// exported struct fields; the interface itself only carries the topic
// classifier.
//
// There is no invalid-but-constructed state: a constructor either returns
// a ready instance or (nil, err).
type Question interface {
	Topic() Topic
}

// Constructor builds one Question instance from an optional parameter
// mapping. It must build the question's own Spec via BuildSpec,
// propagating any error untouched, then derive the remaining fields
// purely as a function of the validated/generated parameters.
type Constructor func(params Params) (Question, error)

// Definition is the registrable unit: a question type's topic, its name
// within that topic, and the constructor that produces instances. The
// registry stores Definitions, never instances — lookup hands the caller
// a constructor reference, and the caller owns each instance it builds.
type Definition struct {
	Topic Topic
	Name  string
	New   Constructor
}
