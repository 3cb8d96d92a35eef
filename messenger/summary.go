package messenger

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func (m *Messenger) String() string {
	return fmt.Sprintf("Messenger with %d users, %d chats and %d messages",
		len(m.users), len(m.chats), len(m.messages))
}

// WriteSummary renders a per-account diagnostic table. Output is for
// humans reading logs or a terminal, not a serialization format.
func (m *Messenger) WriteSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Login", "Phone", "Chats", "Messages", "Friends"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, u := range m.users {
		table.Append([]string{
			strconv.Itoa(int(u.ID)),
			u.Login,
			u.Phone(),
			strconv.Itoa(u.ChatCount()),
			strconv.Itoa(u.MessageCount()),
			strconv.Itoa(len(u.Friends())),
		})
	}
	table.Render()
}
