package tokens

// Package tokens maps free-form dimension strings onto the utility-class
// spacing scale used by generated code. Percentages map to fractions, pixel
// lengths map to scale steps per axis, and everything else becomes an
// arbitrary-value token carrying the literal unchanged. Nothing here fails.
