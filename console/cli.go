// Package console is the interactive menu front-end. It is a thin adapter
// over the registries and the registration engine: every error is rendered as
// a one-line message and the loop continues.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"club-management-system/models"
	"club-management-system/services"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "2006-01-02"

type CLI struct {
	Members     *services.MemberRegistry
	Tournaments *services.TournamentRegistry
	Engine      *services.RegistrationEngine
	Reports     *services.ReportService

	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
}

func New(members *services.MemberRegistry, tournaments *services.TournamentRegistry, engine *services.RegistrationEngine, reports *services.ReportService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		Members:     members,
		Tournaments: tournaments,
		Engine:      engine,
		Reports:     reports,
		in:          bufio.NewScanner(in),
		out:         out,
		printer:     message.NewPrinter(language.English),
	}
}

// Run drives the menu loop until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) {
	fmt.Fprintln(c.out, "Welcome to Club Management System!")
	for {
		c.displayMenu()
		line, ok := c.readLine()
		if !ok {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a valid number")
			continue
		}
		switch choice {
		case 1:
			c.addNewMember(ctx)
		case 2:
			c.createTournament(ctx)
		case 3:
			c.registerMemberForTournament(ctx)
		case 4:
			c.viewMemberStats(ctx)
		case 5:
			c.viewTournamentStats(ctx)
		case 6:
			c.searchMembers(ctx)
		case 7:
			c.searchTournaments(ctx)
		case 8:
			c.manageMemberships(ctx)
		case 9:
			c.manageTournamentStatus(ctx)
		case 10:
			c.generateReports(ctx)
		case 11:
			fmt.Fprintln(c.out, "Exiting system. Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
		}
	}
}

func (c *CLI) displayMenu() {
	fmt.Fprintln(c.out, "\nClub Management System")
	fmt.Fprintln(c.out, "======================")
	fmt.Fprintln(c.out, "1. Add New Member")
	fmt.Fprintln(c.out, "2. Create Tournament")
	fmt.Fprintln(c.out, "3. Register Member for Tournament")
	fmt.Fprintln(c.out, "4. View Member Statistics")
	fmt.Fprintln(c.out, "5. View Tournament Statistics")
	fmt.Fprintln(c.out, "6. Search Members")
	fmt.Fprintln(c.out, "7. Search Tournaments")
	fmt.Fprintln(c.out, "8. Manage Memberships")
	fmt.Fprintln(c.out, "9. Manage Tournament Status")
	fmt.Fprintln(c.out, "10. Generate Reports")
	fmt.Fprintln(c.out, "11. Exit")
	fmt.Fprint(c.out, "\nChoose an option (1-11): ")
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *CLI) promptInt(label string) (int, error) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, fmt.Errorf("input closed")
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func (c *CLI) promptFloat(label string) (float64, error) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, fmt.Errorf("input closed")
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

func (c *CLI) promptDate(label string) (time.Time, error) {
	line, ok := c.prompt(label)
	if !ok {
		return time.Time{}, fmt.Errorf("input closed")
	}
	return time.Parse(dateLayout, strings.TrimSpace(line))
}

func (c *CLI) addNewMember(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Add New Member ===")

	name, _ := c.prompt("Enter member name: ")
	email, _ := c.prompt("Enter email: ")
	phone, _ := c.prompt("Enter phone (XXX-XXX-XXXX): ")
	address, _ := c.prompt("Enter address: ")
	duration, err := c.promptInt("Enter membership duration (months, 1-60): ")
	if err != nil {
		fmt.Fprintln(c.out, "Error adding member: duration must be a number")
		return
	}

	member := &models.Member{
		Name:           name,
		Address:        address,
		Email:          email,
		Phone:          phone,
		StartDate:      time.Now(),
		DurationMonths: duration,
	}
	if _, err := c.Members.Create(ctx, member); err != nil {
		fmt.Fprintf(c.out, "Error adding member: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nMember added successfully!")
}

func (c *CLI) createTournament(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Create New Tournament ===")

	location, _ := c.prompt("Enter tournament location: ")
	startDate, err := c.promptDate("Enter start date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid date format. Please use YYYY-MM-DD")
		return
	}
	endDate, err := c.promptDate("Enter end date (YYYY-MM-DD): ")
	if err != nil {
		fmt.Fprintln(c.out, "Invalid date format. Please use YYYY-MM-DD")
		return
	}
	entryFee, err := c.promptFloat("Enter entry fee: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error creating tournament: entry fee must be a number")
		return
	}
	prize, err := c.promptFloat("Enter prize amount: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error creating tournament: prize amount must be a number")
		return
	}
	minParticipants, err := c.promptInt("Enter minimum participants (2 or more): ")
	if err != nil {
		fmt.Fprintln(c.out, "Error creating tournament: minimum participants must be a number")
		return
	}
	maxParticipants, err := c.promptInt("Enter maximum participants: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error creating tournament: maximum participants must be a number")
		return
	}

	tournament := &models.Tournament{
		Location:            location,
		StartDate:           startDate,
		EndDate:             endDate,
		EntryFee:            entryFee,
		CashPrizeAmount:     prize,
		MinimumParticipants: minParticipants,
		MaximumParticipants: maxParticipants,
	}
	if _, err := c.Tournaments.Create(ctx, tournament); err != nil {
		fmt.Fprintf(c.out, "Error creating tournament: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nTournament created successfully!")
}

func (c *CLI) registerMemberForTournament(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Register Member for Tournament ===")

	members, err := c.Members.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error registering member: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Members:")
	for _, m := range members {
		fmt.Fprintf(c.out, "%d - %s (%s)\n", m.ID, m.Name, m.Status)
	}

	memberID, err := c.promptInt("\nEnter member ID: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error registering member: member ID must be a number")
		return
	}

	tournaments, err := c.Tournaments.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error registering member: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Tournaments:")
	for _, t := range tournaments {
		fmt.Fprintf(c.out, "%d - %s at %s (%d/%d participants)\n",
			t.ID, t.Location, t.StartDate.Format(dateLayout), t.ParticipantCount, t.MaximumParticipants)
	}

	tournamentID, err := c.promptInt("\nEnter tournament ID: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error registering member: tournament ID must be a number")
		return
	}

	if _, err := c.Engine.AddParticipant(ctx, uint(tournamentID), uint(memberID)); err != nil {
		fmt.Fprintf(c.out, "Error registering member: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nMember successfully registered for tournament!")
}

func (c *CLI) viewMemberStats(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== View Member Statistics ===")

	members, err := c.Members.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error viewing member stats: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Members:")
	for _, m := range members {
		fmt.Fprintf(c.out, "%d - %s\n", m.ID, m.Name)
	}

	memberID, err := c.promptInt("\nEnter member ID: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error viewing member stats: member ID must be a number")
		return
	}

	m, err := c.Members.Get(ctx, uint(memberID))
	if err != nil {
		fmt.Fprintln(c.out, "Member not found")
		return
	}
	fmt.Fprintln(c.out, "\nMember Statistics:")
	fmt.Fprintln(c.out, "Name: "+m.Name)
	fmt.Fprintln(c.out, "Email: "+m.Email)
	fmt.Fprintln(c.out, "Phone: "+m.Phone)
	fmt.Fprintf(c.out, "Status: %s\n", m.Status)
	fmt.Fprintln(c.out, "Membership Start: "+m.StartDate.Format(dateLayout))
	fmt.Fprintf(c.out, "Duration: %d months\n", m.DurationMonths)
	fmt.Fprintf(c.out, "Total Tournaments: %d\n", m.TotalTournamentsPlayed)
	c.printer.Fprintf(c.out, "Total Winnings: $%.2f\n", m.TotalWinnings)
}

func (c *CLI) viewTournamentStats(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== View Tournament Statistics ===")

	tournaments, err := c.Tournaments.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error viewing tournament stats: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Tournaments:")
	for _, t := range tournaments {
		fmt.Fprintf(c.out, "%d - %s (%s)\n", t.ID, t.Location, t.Status)
	}

	tournamentID, err := c.promptInt("\nEnter tournament ID: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error viewing tournament stats: tournament ID must be a number")
		return
	}

	t, err := c.Tournaments.Get(ctx, uint(tournamentID))
	if err != nil {
		fmt.Fprintln(c.out, "Tournament not found")
		return
	}
	fmt.Fprintln(c.out, "\nTournament Statistics:")
	fmt.Fprintln(c.out, "Location: "+t.Location)
	fmt.Fprintf(c.out, "Status: %s\n", t.Status)
	fmt.Fprintln(c.out, "Start Date: "+t.StartDate.Format(dateLayout))
	fmt.Fprintln(c.out, "End Date: "+t.EndDate.Format(dateLayout))
	c.printer.Fprintf(c.out, "Entry Fee: $%.2f\n", t.EntryFee)
	c.printer.Fprintf(c.out, "Prize Pool: $%.2f\n", t.CashPrizeAmount)
	fmt.Fprintf(c.out, "Participants: %d/%d\n", t.ParticipantCount, t.MaximumParticipants)

	if len(t.Participants) > 0 {
		fmt.Fprintln(c.out, "\nRegistered Members:")
		for _, m := range t.Participants {
			fmt.Fprintf(c.out, "- %s (%s)\n", m.Name, m.Status)
		}
	}

	revenue, err := c.Tournaments.Revenue(ctx, t.ID)
	if err == nil {
		c.printer.Fprintf(c.out, "\nTotal Revenue: $%.2f\n", revenue)
	}
}

func (c *CLI) searchMembers(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Search Members ===")
	fmt.Fprintln(c.out, "1. Search by Name")
	fmt.Fprintln(c.out, "2. Search by Phone")
	fmt.Fprintln(c.out, "3. Search by Status")
	fmt.Fprintln(c.out, "4. Search by Tournament Participation")

	choice, err := c.promptInt("\nChoose search option: ")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}

	var results []models.Member
	switch choice {
	case 1:
		name, _ := c.prompt("Enter name to search: ")
		results, err = c.Members.SearchByName(ctx, name)
	case 2:
		phone, _ := c.prompt("Enter phone number: ")
		results, err = c.Members.SearchByPhone(ctx, phone)
	case 3:
		status, _ := c.prompt("Enter status (ACTIVE/EXPIRED/SUSPENDED/PENDING): ")
		results, err = c.Members.ListByStatus(ctx, models.MembershipStatus(strings.ToUpper(strings.TrimSpace(status))))
	case 4:
		var count int
		count, err = c.promptInt("Enter minimum number of tournaments: ")
		if err == nil {
			results, err = c.Members.ListByMinTournaments(ctx, count)
		}
	default:
		fmt.Fprintln(c.out, "Invalid option")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error searching members: %v\n", err)
		return
	}
	c.displayMemberResults(results)
}

func (c *CLI) searchTournaments(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Search Tournaments ===")
	fmt.Fprintln(c.out, "1. Search by Location")
	fmt.Fprintln(c.out, "2. Search by Date Range")
	fmt.Fprintln(c.out, "3. Search by Status")
	fmt.Fprintln(c.out, "4. Current Tournaments")
	fmt.Fprintln(c.out, "5. Tournaments with Open Slots")

	choice, err := c.promptInt("\nChoose search option: ")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}

	var results []models.Tournament
	switch choice {
	case 1:
		location, _ := c.prompt("Enter location: ")
		results, err = c.Tournaments.SearchByLocation(ctx, location)
	case 2:
		var from, to time.Time
		from, err = c.promptDate("Enter start date (YYYY-MM-DD): ")
		if err != nil {
			fmt.Fprintln(c.out, "Invalid date format")
			return
		}
		to, err = c.promptDate("Enter end date (YYYY-MM-DD): ")
		if err != nil {
			fmt.Fprintln(c.out, "Invalid date format")
			return
		}
		results, err = c.Tournaments.ListByDateRange(ctx, from, to)
	case 3:
		status, _ := c.prompt("Enter status (SCHEDULED/IN_PROGRESS/COMPLETED/CANCELLED): ")
		results, err = c.Tournaments.ListByStatus(ctx, models.TournamentStatus(strings.ToUpper(strings.TrimSpace(status))))
	case 4:
		results, err = c.Tournaments.ListCurrent(ctx)
	case 5:
		results, err = c.Tournaments.ListAvailable(ctx)
	default:
		fmt.Fprintln(c.out, "Invalid option")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "Error searching tournaments: %v\n", err)
		return
	}
	c.displayTournamentResults(results)
}

func (c *CLI) manageMemberships(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Manage Memberships ===")

	members, err := c.Members.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error managing membership: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nCurrent Members:")
	for _, m := range members {
		fmt.Fprintf(c.out, "%d - %s (Current Status: %s)\n", m.ID, m.Name, m.Status)
	}

	memberID, err := c.promptInt("\nEnter member ID to manage: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error managing membership: member ID must be a number")
		return
	}

	fmt.Fprintln(c.out, "\nSelect new status:")
	fmt.Fprintln(c.out, "1. ACTIVE")
	fmt.Fprintln(c.out, "2. SUSPENDED")
	fmt.Fprintln(c.out, "3. EXPIRED")
	fmt.Fprintln(c.out, "4. PENDING")

	choice, err := c.promptInt("")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}
	var newStatus models.MembershipStatus
	switch choice {
	case 1:
		newStatus = models.MemberActive
	case 2:
		newStatus = models.MemberSuspended
	case 3:
		newStatus = models.MemberExpired
	case 4:
		newStatus = models.MemberPending
	default:
		fmt.Fprintln(c.out, "Invalid status choice")
		return
	}

	if err := c.Members.SetStatus(ctx, uint(memberID), newStatus); err != nil {
		fmt.Fprintf(c.out, "Error managing membership: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nMembership status updated successfully!")
}

func (c *CLI) manageTournamentStatus(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Manage Tournament Status ===")

	tournaments, err := c.Tournaments.List(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error managing tournament status: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nCurrent Tournaments:")
	for _, t := range tournaments {
		fmt.Fprintf(c.out, "%d - %s (Current Status: %s)\n", t.ID, t.Location, t.Status)
	}

	tournamentID, err := c.promptInt("\nEnter tournament ID to manage: ")
	if err != nil {
		fmt.Fprintln(c.out, "Error managing tournament status: tournament ID must be a number")
		return
	}

	fmt.Fprintln(c.out, "\nSelect new status:")
	fmt.Fprintln(c.out, "1. SCHEDULED")
	fmt.Fprintln(c.out, "2. IN_PROGRESS")
	fmt.Fprintln(c.out, "3. COMPLETED")
	fmt.Fprintln(c.out, "4. CANCELLED")

	choice, err := c.promptInt("")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}
	var newStatus models.TournamentStatus
	switch choice {
	case 1:
		newStatus = models.TournamentScheduled
	case 2:
		newStatus = models.TournamentInProgress
	case 3:
		newStatus = models.TournamentCompleted
	case 4:
		newStatus = models.TournamentCancelled
	default:
		fmt.Fprintln(c.out, "Invalid status choice")
		return
	}

	if err := c.Engine.TransitionStatus(ctx, uint(tournamentID), newStatus); err != nil {
		fmt.Fprintf(c.out, "Error managing tournament status: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nTournament status updated successfully!")
}

func (c *CLI) generateReports(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Generate Reports ===")
	fmt.Fprintln(c.out, "1. Active Members Report")
	fmt.Fprintln(c.out, "2. Tournament Revenue Report")
	fmt.Fprintln(c.out, "3. Member Participation Report")
	fmt.Fprintln(c.out, "4. Export Revenue Report (CSV)")
	fmt.Fprintln(c.out, "5. Export Participation Report (CSV)")

	choice, err := c.promptInt("\nSelect report type: ")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}
	switch choice {
	case 1:
		c.activeMembersReport(ctx)
	case 2:
		c.revenueReport(ctx)
	case 3:
		c.participationReport(ctx)
	case 4:
		url, err := c.Reports.ExportRevenueCSV(ctx)
		if err != nil {
			fmt.Fprintf(c.out, "Error exporting report: %v\n", err)
			return
		}
		fmt.Fprintln(c.out, "Report uploaded: "+url)
	case 5:
		url, err := c.Reports.ExportParticipationCSV(ctx)
		if err != nil {
			fmt.Fprintf(c.out, "Error exporting report: %v\n", err)
			return
		}
		fmt.Fprintln(c.out, "Report uploaded: "+url)
	default:
		fmt.Fprintln(c.out, "Invalid report option")
	}
}

func (c *CLI) activeMembersReport(ctx context.Context) {
	members, err := c.Members.ListByStatus(ctx, models.MemberActive)
	if err != nil {
		fmt.Fprintf(c.out, "Error generating report: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\n=== Active Members Report ===")
	fmt.Fprintf(c.out, "Total Active Members: %d\n", len(members))
	c.displayMemberResults(members)
}

func (c *CLI) revenueReport(ctx context.Context) {
	report, err := c.Reports.RevenueReport(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error generating report: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\n=== Tournament Revenue Report ===")
	c.printer.Fprintf(c.out, "Total Revenue Across Completed Tournaments: $%.2f\n", report.Total)
	fmt.Fprintln(c.out, "\nRevenue by Tournament:")
	for _, row := range report.Rows {
		c.printer.Fprintf(c.out, "- %s: $%.2f (Participants: %d, Entry Fee: $%.2f)\n",
			row.Location, row.Revenue, row.ParticipantCount, row.EntryFee)
	}
}

func (c *CLI) participationReport(ctx context.Context) {
	fmt.Fprintln(c.out, "\n=== Member Participation Report ===")
	minCount, err := c.promptInt("Enter minimum tournament count: ")
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number")
		return
	}
	members, err := c.Members.ListByMinTournaments(ctx, minCount-1)
	if err != nil {
		fmt.Fprintf(c.out, "Error generating report: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nMembers with %d or more tournaments:\n", minCount)
	for _, m := range members {
		fmt.Fprintf(c.out, "- %s: %d tournaments\n", m.Name, m.TotalTournamentsPlayed)
	}
}

func (c *CLI) displayMemberResults(members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(c.out, "\nNo members found")
		return
	}
	fmt.Fprintln(c.out, "\nMembers found:")
	for _, m := range members {
		fmt.Fprintf(c.out, "ID: %d | Name: %s | Status: %s | Email: %s | Phone: %s\n",
			m.ID, m.Name, m.Status, m.Email, m.Phone)
	}
}

func (c *CLI) displayTournamentResults(tournaments []models.Tournament) {
	if len(tournaments) == 0 {
		fmt.Fprintln(c.out, "\nNo tournaments found")
		return
	}
	fmt.Fprintln(c.out, "\nTournaments found:")
	for _, t := range tournaments {
		fmt.Fprintf(c.out, "ID: %d | Location: %s | Status: %s | Date: %s | Participants: %d/%d\n",
			t.ID, t.Location, t.Status, t.StartDate.Format(dateLayout), t.ParticipantCount, t.MaximumParticipants)
	}
}
