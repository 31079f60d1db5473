package lox

import "fmt"

// Environment holds the variables of one lexical scope. A child environment
// points at the scope enclosing it, never the other way around.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a new scope nested in enclosing, nil for globals
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]interface{})}
}

// Define binds name in this scope, replacing any earlier binding of the same
// name in it and shadowing bindings of enclosing scopes.
func (env *Environment) Define(name string, value interface{}) {
	env.values[name] = value
}

// Assign updates the nearest scope that defines the variable. It never
// creates a new binding.
func (env *Environment) Assign(name *Token, value interface{}) error {
	for scope := env; scope != nil; scope = scope.enclosing {
		if _, ok := scope.values[name.Lexeme]; ok {
			scope.values[name.Lexeme] = value
			return nil
		}
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return NewRuntimeError(name, msg)
}

// Get looks the variable up starting from this scope and going outward.
func (env *Environment) Get(name *Token) (interface{}, error) {
	for scope := env; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return nil, NewRuntimeError(name, msg)
}
