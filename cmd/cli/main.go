package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JunaidJamshid123/Gitly-sub000/internal/assistant"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/config"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/db"
	apperrors "github.com/JunaidJamshid123/Gitly-sub000/internal/errors"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/github"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
	"github.com/JunaidJamshid123/Gitly-sub000/internal/stats"
)

var trendingLanguage string

var rootCmd = &cobra.Command{
	Use:   "gitly",
	Short: "GitHub client in the terminal",
	Long: `Browse GitHub from the terminal: search repositories and developers,
inspect profiles and contribution calendars, track trending projects,
manage local favorites and ask the AI assistant.`,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search GitHub",
}

var searchReposCmd = &cobra.Command{
	Use:   "repos [query]",
	Short: "Search repositories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchRepos,
}

var searchUsersCmd = &cobra.Command{
	Use:   "users [query]",
	Short: "Search developers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearchUsers,
}

var userCmd = &cobra.Command{
	Use:   "user [login]",
	Short: "Show a developer profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

var repoCmd = &cobra.Command{
	Use:   "repo [owner/name]",
	Short: "Show a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepo,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [login]",
	Short: "Show a developer's contribution calendar",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendar,
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending repositories",
	RunE:  runTrending,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Show language popularity",
	RunE:  runLanguages,
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage local favorites",
}

var favoritesReposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List favorited repositories",
	RunE:  runFavoriteRepos,
}

var favoritesUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List favorited developers",
	RunE:  runFavoriteUsers,
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle [owner/name]",
	Short: "Toggle a repository's favorite state",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoriteToggle,
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the AI assistant",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	trendingCmd.Flags().StringVar(&trendingLanguage, "language", "", "restrict to one language")

	searchCmd.AddCommand(searchReposCmd)
	searchCmd.AddCommand(searchUsersCmd)
	favoritesCmd.AddCommand(favoritesReposCmd)
	favoritesCmd.AddCommand(favoritesUsersCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(chatCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *github.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	logger.SetOutput(os.Stderr)

	client := github.NewClient(cfg.GitHubToken, logger, github.WithTimeout(cfg.HTTPTimeout))
	svc := github.NewService(cfg.GitHubToken, logger,
		github.WithAPIClient(client),
		github.WithCacheTTL(cfg.CacheTTL),
	)
	return cfg, svc, nil
}

func openStore(cfg *config.Config) (db.Store, error) {
	return db.NewSQLiteStore(cfg.DBPath)
}

func renderRepos(repos []models.Repository) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Repository", "Language", "Stars", "Forks", "Description"})
	for _, repo := range repos {
		table.Append([]string{
			repo.FullName,
			repo.Language,
			strconv.Itoa(repo.StarsCount),
			strconv.Itoa(repo.ForksCount),
			truncate(repo.Description, 60),
		})
	}
	table.Render()
}

func runSearchRepos(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	repos, err := gh.SearchRepositories(context.Background(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}

	renderRepos(repos)
	return nil
}

func runSearchUsers(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	users, err := gh.SearchUsers(context.Background(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	if len(users) == 0 {
		fmt.Println("No developers found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Login", "ID"})
	for _, user := range users {
		table.Append([]string{user.Login, strconv.FormatInt(user.ID, 10)})
	}
	table.Render()
	return nil
}

func runUser(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	user, err := gh.GetUserDetails(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	fmt.Printf("%s (%s)\n", user.Login, user.Name)
	if user.Bio != "" {
		fmt.Println(user.Bio)
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Public Repos", "Followers", "Following", "Company", "Location"})
	table.Append([]string{
		strconv.Itoa(user.PublicRepos),
		strconv.Itoa(user.Followers),
		strconv.Itoa(user.Following),
		user.Company,
		user.Location,
	})
	table.Render()
	return nil
}

func runRepo(cmd *cobra.Command, args []string) error {
	owner, name, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	_, gh, err := setup()
	if err != nil {
		return err
	}

	repo, err := gh.GetRepository(context.Background(), owner, name)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	fmt.Println(repo.FullName)
	if repo.Description != "" {
		fmt.Println(repo.Description)
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Language", "Stars", "Forks", "Watchers", "Open Issues", "Topics"})
	table.Append([]string{
		repo.Language,
		strconv.Itoa(repo.StarsCount),
		strconv.Itoa(repo.ForksCount),
		strconv.Itoa(repo.WatchersCount),
		strconv.Itoa(repo.OpenIssuesCount),
		strings.Join(repo.Topics, ", "),
	})
	table.Render()
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	calendar, err := gh.GetContributionCalendar(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	fmt.Printf("%d contributions in the last year\n", calendar.TotalContributions)

	// Distribution of days per intensity level.
	levels := make([]int, 5)
	for _, week := range calendar.Weeks {
		for _, day := range week.Days {
			levels[day.Level]++
		}
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Days"})
	for level, days := range levels {
		table.Append([]string{strconv.Itoa(level), strconv.Itoa(days)})
	}
	table.Render()
	return nil
}

func runTrending(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	repos, err := gh.GetTrendingRepositories(context.Background(), trendingLanguage)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	if len(repos) == 0 {
		fmt.Println("Nothing trending right now.")
		return nil
	}

	renderRepos(repos)
	return nil
}

func runLanguages(cmd *cobra.Command, args []string) error {
	_, gh, err := setup()
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	logger.SetOutput(os.Stderr)

	shares := stats.NewService(gh, logger).LanguagePopularity(context.Background())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Language", "Share"})
	for _, share := range shares {
		table.Append([]string{share.Language, fmt.Sprintf("%.1f%%", share.Percent)})
	}
	table.Render()
	return nil
}

func runFavoriteRepos(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	favorites, err := store.ListFavoriteRepositories(context.Background())
	if err != nil {
		return err
	}
	if len(favorites) == 0 {
		fmt.Println("No favorite repositories yet.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Repository", "Language", "Stars", "Saved"})
	for _, fav := range favorites {
		table.Append([]string{
			fav.FullName,
			fav.Language,
			strconv.Itoa(fav.StarsCount),
			fav.SavedAt.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func runFavoriteUsers(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	favorites, err := store.ListFavoriteUsers(context.Background())
	if err != nil {
		return err
	}
	if len(favorites) == 0 {
		fmt.Println("No favorite developers yet.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Login", "Followers", "Saved"})
	for _, fav := range favorites {
		table.Append([]string{
			fav.Login,
			strconv.Itoa(fav.Followers),
			fav.SavedAt.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func runFavoriteToggle(cmd *cobra.Command, args []string) error {
	owner, name, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	cfg, gh, err := setup()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	repo, err := gh.GetRepository(context.Background(), owner, name)
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	saved, err := store.ToggleFavoriteRepository(context.Background(), repo)
	if err != nil {
		return err
	}
	if saved {
		fmt.Printf("Added %s to favorites.\n", repo.FullName)
	} else {
		fmt.Printf("Removed %s from favorites.\n", repo.FullName)
	}
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, gh, err := setup()
	if err != nil {
		return err
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	logger.SetOutput(os.Stderr)

	ctx := context.Background()
	gateway, err := assistant.NewGateway(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, gh, logger)
	if err != nil {
		return err
	}
	defer gateway.Close()

	reply, err := gateway.Ask(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}

	fmt.Println(reply.Text)
	for _, link := range reply.Links {
		fmt.Printf("  -> %s (%s)\n", link.Label, link.Kind)
	}
	return nil
}

func splitRepoArg(arg string) (string, string, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected owner/name, got %q", arg)
	}
	return parts[0], parts[1], nil
}
