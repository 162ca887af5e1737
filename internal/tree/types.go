package tree

// Base is the scalar type a value or declaration carries (spec.md §3.5).
type Base int

const (
	NONE Base = iota
	CHAR
	INT
	VOID
)

func (b Base) String() string {
	switch b {
	case CHAR:
		return "CHAR"
	case INT:
		return "INT"
	case VOID:
		return "VOID"
	default:
		return "NONE"
	}
}

// ParseBase parses the textual spelling SemanticAnalyzer's type keywords use
// in the grammar ("CHAR", "INT", "VOID"); any other spelling maps to NONE.
func ParseBase(s string) Base {
	switch s {
	case "CHAR":
		return CHAR
	case "INT":
		return INT
	case "VOID":
		return VOID
	default:
		return NONE
	}
}

// Object is the type descriptor SemanticAnalyzer attaches to every typed
// tree node and symbol-table entry (spec.md §3.5), grounded on
// original_source/L3/main.cpp's Object: a scalar Base, const/array
// qualifiers, and, when it describes a function, its return type and
// parameter list instead of Base being meaningful on its own.
type Object struct {
	Base  Base
	Const bool
	Array bool

	IsFunction  bool
	IsDefined   bool
	ReturnType  Base
	PostfixName string
	Parameters  []Object
}
