package user

// Predicate reports whether a user matches a search.
type Predicate func(User) bool

// ByFirstName matches users with exactly the given first name.
func ByFirstName(firstName string) Predicate {
	return func(u User) bool { return u.FirstName == firstName }
}

// ByLastName matches users with exactly the given last name.
func ByLastName(lastName string) Predicate {
	return func(u User) bool { return u.LastName == lastName }
}

// ByAge matches users of the given age.
func ByAge(age int) Predicate {
	return func(u User) bool { return u.Age == age }
}

// And matches users accepted by every predicate. With no predicates it
// matches everything.
func And(preds ...Predicate) Predicate {
	return func(u User) bool {
		for _, p := range preds {
			if !p(u) {
				return false
			}
		}
		return true
	}
}
