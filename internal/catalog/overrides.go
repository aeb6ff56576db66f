package catalog

import "strconv"

// UnsetValue is the option value that removes an override from a type.
const UnsetValue = "-1"

// OverrideValue is one selectable value of a server override.
type OverrideValue struct {
	Label string
	Value string
}

// ServerOverride describes a server variable a type may override at
// match start or at the end of the match.
type ServerOverride struct {
	Key         string
	Label       string
	Description string
	Values      []OverrideValue
}

var (
	toggleValues = []OverrideValue{
		{Label: "None", Value: UnsetValue},
		{Label: "Disable", Value: "0"},
		{Label: "Enable", Value: "1"},
	}
	sprintValues = []OverrideValue{
		{Label: "None", Value: UnsetValue},
		{Label: "Inherit", Value: "2"},
		{Label: "Disable", Value: "0"},
		{Label: "Enable", Value: "1"},
	}
)

func numberValues(from, to int) []OverrideValue {
	out := []OverrideValue{{Label: "None", Value: UnsetValue}}
	for n := from; n <= to; n++ {
		s := strconv.Itoa(n)
		out = append(out, OverrideValue{Label: s, Value: s})
	}
	return out
}

var serverOverrides = []ServerOverride{
	{Key: "Server.Sprint", Label: "Sprint", Description: "Set the Sprint option for the Server", Values: sprintValues},
	{Key: "Server.UnlimitedSprint", Label: "Unlimited Sprint", Description: "Set the Unlimited Sprint option for the Server", Values: toggleValues},
	{Key: "Server.AssassinationEnabled", Label: "Assassinations", Description: "Set the Assassinations option for the Server", Values: toggleValues},
	{Key: "Server.NumberOfTeams", Label: "Team Count", Description: "Set the Number of Teams for the Server", Values: numberValues(0, 8)},
	{
		Key:   "Server.TeamSize",
		Label: "Team Size",
		Description: "Number of players assigned to a team before moving on to the next team. " +
			"1 distributes players evenly across teams.",
		Values: numberValues(1, 8),
	},
	{Key: "Server.PodiumEnabled", Label: "Podium", Description: "Set the Podium option for the Server", Values: toggleValues},
	{Key: "Server.EmotesEnabled", Label: "Emotes", Description: "Set the Emotes option for the Server", Values: toggleValues},
	{Key: "Server.EmotesDuringPodiumEnabled", Label: "Podium Emotes", Description: "Set the Podium Emotes option for the Server", Values: toggleValues},
	{Key: "Server.KillCommandEnabled", Label: "Kill Command", Description: "Set the Kill Command option for the Server", Values: toggleValues},
	{Key: "Server.KillCommandDuringPodiumEnabled", Label: "Podium Kill Command", Description: "Set the Podium Kill Command option for the Server", Values: toggleValues},
	{Key: "Server.NearVictoryMusicEnabled", Label: "Near Victory Music", Description: "Set the Near Victory Music option for the Server", Values: toggleValues},
	{Key: "Server.PostMatchMusicEnabled", Label: "Post Match Music", Description: "Set the Post Match Music option for the Server", Values: toggleValues},
}

// ServerOverrides returns the overrides offered by the type form.
func ServerOverrides() []ServerOverride {
	out := make([]ServerOverride, len(serverOverrides))
	copy(out, serverOverrides)
	return out
}

// Allows reports whether value is one of the override's values.
func (o ServerOverride) Allows(value string) bool {
	for _, v := range o.Values {
		if v.Value == value {
			return true
		}
	}
	return false
}
