package topic

// DefaultVocabulary is the fixed list of programming topics recognized in chat turns.
// Order matters: Extract reports matches in this order.
var DefaultVocabulary = []string{
	"HTML", "CSS", "JavaScript", "Python", "React", "Node.js", "Firebase",
	"Database", "API", "Function", "Variable", "Loop", "Array", "Object",
	"Class", "Error", "Debug", "Git", "JSON", "Async", "Promise", "DOM",
	"Event", "Framework", "Library",
}
