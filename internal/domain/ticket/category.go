package ticket

// Category is one of the six fixed support categories a ticket is routed to.
// The value doubles as the name of the platform category channel that groups
// the ticket channels.
type Category string

const (
	CategoryGeneral     Category = "General"
	CategoryApplication Category = "Team Application"
	CategoryTechnical   Category = "Technical Support"
	CategoryUnban       Category = "Unban Request"
	CategoryFaction     Category = "Faction Request"
	CategoryOther       Category = "Other"
)

// CategoryOption describes how a category is presented in the selection menu.
type CategoryOption struct {
	Category    Category
	Description string
	Emoji       string
}

var categoryOptions = []CategoryOption{
	{CategoryGeneral, "General questions and problems", "❓"},
	{CategoryApplication, "Apply to join the staff team", "📝"},
	{CategoryTechnical, "Problems with mods, graphics or the server", "🔧"},
	{CategoryUnban, "File an unban request", "🔓"},
	{CategoryFaction, "Questions or requests about a faction", "🏳️"},
	{CategoryOther, "Anything that fits no other category", "🔗"},
}

// CategoryOptions returns the fixed menu entries in display order.
func CategoryOptions() []CategoryOption {
	return categoryOptions
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, opt := range categoryOptions {
		if opt.Category == c {
			return true
		}
	}
	return false
}
