package kernel

import "github.com/tanmay-deshpand3/geometry-solver/expr"

// ValidateExpression passes through to expr.Validate, so a host's
// expression-entry field can give immediate syntax feedback without
// importing expr directly.
func (st *State) ValidateExpression(expression string) bool {
	return expr.Validate(expression)
}

// EvaluateExpression resolves expression against the store's current
// variables.
func (st *State) EvaluateExpression(expression string) (float64, bool) {
	vars := make(expr.Vars, len(st.Store.Variables))
	for name, v := range st.Store.Variables {
		vars[name] = expr.Value{Num: v.Value, IsSet: true}
	}
	return expr.Evaluate(expression, vars)
}

// ExtractVariableNames passes through to expr.ExtractVariableNames.
func (st *State) ExtractVariableNames(expression string) []string {
	return expr.ExtractVariableNames(expression)
}
