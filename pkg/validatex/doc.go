// Package validatex validates Brazilian identity documents and common form
// inputs.
//
// Two families cover the same concepts. The strict validators (IsCPF,
// IsEmail, IsURL, ...) are pure predicates: empty input is invalid and
// they never return errors. The rule family (CPF, Email, URL, ...)
// implements ozzo-validation's Rule for optional form fields, where an
// empty value is valid unless Required says otherwise.
package validatex
