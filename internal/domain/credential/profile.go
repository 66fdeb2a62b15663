package credential

// Profile carries the subscriber attributes credential tokens draw from.
type Profile struct {
	FirstName  string
	MiddleName string
	LastName   string
	Mobile     string
	LCP        string
	NAP        string
	Port       string
}
