package semantic

import "github.com/friscc/friscc/internal/tree"

// CheckMain verifies the global scope declares a function `int main(void)`
// (spec.md §4.3 "global checks"), grounded on original_source/L3/main.cpp
// checkMain. It returns a *GlobalViolation marked "main" on any mismatch.
func CheckMain(global *Scope) error {
	main, exists := global.Table["main"]
	if !exists {
		return &GlobalViolation{Marker: "main"}
	}
	if !main.IsFunction || main.Base != tree.INT || len(main.Parameters) != 0 {
		return &GlobalViolation{Marker: "main"}
	}
	return nil
}

// CheckFunctionDefinitions verifies that every function referenced anywhere
// in the scope tree is defined in the global scope with a matching
// signature (spec.md §4.3 "global checks"). This walks every scope in the
// tree, not only the global one, grounded on
// original_source/L3/main.cpp checkFunctionDefinitions, which recurses over
// block.children from the root — a function call nested arbitrarily deep
// still has to resolve against a real global definition.
func CheckFunctionDefinitions(scope, global *Scope) error {
	for _, name := range scope.Names {
		fn := scope.Table[name]
		if !fn.IsFunction {
			continue
		}

		found := false
		for _, gname := range global.Names {
			globalFn := global.Table[gname]
			if !(globalFn.IsFunction && globalFn.IsDefined && gname == name) {
				continue
			}
			found = true
			if fn.Base != globalFn.Base || len(fn.Parameters) != len(globalFn.Parameters) {
				return &GlobalViolation{Marker: "funkcija"}
			}
			for i := range fn.Parameters {
				if fn.Parameters[i].Base != globalFn.Parameters[i].Base {
					return &GlobalViolation{Marker: "funkcija"}
				}
			}
		}
		if !found {
			return &GlobalViolation{Marker: "funkcija"}
		}
	}

	for _, child := range scope.Children {
		if err := CheckFunctionDefinitions(child, global); err != nil {
			return err
		}
	}
	return nil
}
