package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/config"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/agent"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/airline"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/analytics"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/api"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/credentials"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/knowledge"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/llm"
	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/media"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfg      *config.Config
	logger   zerolog.Logger
	provider string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "erwiq-agent [question]",
		Short: "ERWIQ Airlines customer support assistant",
		Long: `ERWIQ Agent is an AI-powered customer support assistant for ERWIQ
Airlines. It answers questions about fares, flight status, bookings,
refunds, and airline policies, grounding policy answers in the ERWIQ
knowledge base.

Provider Options:
  --provider openai   Force OpenAI (GPT-4o-mini)
  --provider claude   Force Claude (Sonnet)
  --provider gemini   Force Gemini (Flash)
  (default)           Preferred provider with automatic fallback

Examples:
  erwiq-agent "How much is a business class ticket to Goa?"
  erwiq-agent --provider claude "Is flight EQ101 on time?"
  erwiq-agent chat
  erwiq-agent serve --port 8080
  erwiq-agent embed`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().
				Timestamp().
				Logger()

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			question := strings.Join(args, " ")
			return runAsk(question, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Force a single provider: openai, claude, gemini")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(embedCmd())
	rootCmd.AddCommand(transcribeCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func askCmd() *cobra.Command {
	var speak bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		Long:  "Ask a single question and get an AI-powered response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return runAsk(question, speak)
		},
	}

	cmd.Flags().BoolVar(&speak, "speak", false, "Also synthesize the reply as response_audio.mp3")
	return cmd
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long:  "Start an interactive chat session with the ERWIQ support assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat()
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start the REST API server for programmatic access",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				cfg.ServerPort = port
			}
			return runServer()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: 8080)")
	return cmd
}

func embedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed",
		Short: "Build the knowledge-base embedding cache",
		Long:  "Embed all policy documents and save them to the knowledge-base cache file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireOpenAI(); err != nil {
				return err
			}

			openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
			embedder := knowledge.NewOpenAIEmbedder(openaiClient, cfg.EmbeddingModel)
			index := knowledge.NewIndex(embedder, logger)

			fmt.Printf("Embedding %d policy documents...\n", index.Len())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			if err := index.EmbedAll(ctx); err != nil {
				return err
			}
			if err := index.Save(cfg.KnowledgeBasePath); err != nil {
				return err
			}

			fmt.Printf("Knowledge base saved to %s\n", cfg.KnowledgeBasePath)
			return nil
		},
	}
}

func transcribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe [audio file]",
		Short: "Transcribe an audio file to text",
		Long:  "Transcribe a customer's recorded question to text using Whisper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireOpenAI(); err != nil {
				return err
			}

			svc := media.NewService(openai.NewClient(cfg.OpenAIAPIKey))

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			text, err := svc.Transcribe(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}
}

type runtime struct {
	agent    *agent.Agent
	media    *media.Service
	recorder *analytics.Recorder
}

func createRuntime() (*runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var openaiLLM, claudeLLM, geminiLLM llm.Client
	var openaiClient *openai.Client

	if cfg.OpenAIAPIKey != "" {
		openaiClient = openai.NewClient(cfg.OpenAIAPIKey)
		openaiLLM = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI available")
	}
	if cfg.AnthropicAPIKey != "" {
		claudeLLM = llm.NewClaudeClient(cfg.AnthropicAPIKey, cfg.ClaudeModel)
		logger.Info().Str("model", cfg.ClaudeModel).Msg("Claude available")
	}
	if cfg.GeminiAPIKey != "" {
		geminiLLM = llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		logger.Info().Str("model", cfg.GeminiModel).Msg("Gemini available")
	}

	var chain llm.Router = llm.NewFallbackChain(cfg.PreferredProvider, openaiLLM, claudeLLM, geminiLLM)

	if provider != "" {
		forced := map[string]llm.Client{
			"openai": openaiLLM,
			"claude": claudeLLM,
			"gemini": geminiLLM,
		}[provider]
		if forced == nil {
			return nil, fmt.Errorf("provider %s is not configured or not recognized", provider)
		}
		chain = llm.ForceClient(forced)
	}

	var index *knowledge.Index
	var mediaSvc *media.Service

	if openaiClient != nil {
		embedder := knowledge.NewOpenAIEmbedder(openaiClient, cfg.EmbeddingModel)
		index = knowledge.NewIndex(embedder, logger)

		loaded, err := index.Load(cfg.KnowledgeBasePath)
		if err != nil {
			return nil, err
		}
		if !loaded {
			logger.Info().Msg("embedding knowledge base (first run)")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if err := index.EmbedAll(ctx); err != nil {
				return nil, fmt.Errorf("failed to embed knowledge base: %w", err)
			}
			if err := index.Save(cfg.KnowledgeBasePath); err != nil {
				logger.Warn().Err(err).Msg("failed to save knowledge base cache")
			}
		}

		mediaSvc = media.NewService(openaiClient)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set: policy search, voice, and images disabled")
	}

	recorder := analytics.NewRecorder()
	notifier := analytics.NewNotifier(logger)
	toolHandler := agent.NewToolHandler(airline.NewRefundLedger(), index, mediaSvc)

	return &runtime{
		agent:    agent.New(chain, toolHandler, recorder, notifier, logger),
		media:    mediaSvc,
		recorder: recorder,
	}, nil
}

func runAsk(question string, speak bool) error {
	rt, err := createRuntime()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := rt.agent.Chat(ctx, question, nil)
	if err != nil {
		return err
	}

	fmt.Println(result.Response)

	if speak {
		if rt.media == nil {
			return fmt.Errorf("voice output requires OPENAI_API_KEY")
		}
		if err := rt.media.Synthesize(ctx, result.Response, cfg.TTSVoice, "response_audio.mp3"); err != nil {
			return err
		}
		fmt.Println("Voice response saved to response_audio.mp3")
	}

	return nil
}

func runChat() error {
	rt, err := createRuntime()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()

	fmt.Println("ERWIQ Airlines Customer Support")
	fmt.Println("================================")
	fmt.Println("Ask me about fares, flight status, bookings, refunds,")
	fmt.Println("or airline policies.")
	fmt.Println()
	fmt.Println("Type 'exit' or 'quit' to end the session.")
	fmt.Println()

	var history []agent.Message
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("You: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			return nil
		}

		if input == "clear" {
			history = nil
			fmt.Println("Conversation cleared.")
			continue
		}

		fmt.Println()
		fmt.Print("Thinking...")

		result, err := rt.agent.Chat(ctx, input, history)
		if err != nil {
			fmt.Printf("\rError: %v\n\n", err)
			continue
		}

		history = result.History

		fmt.Print("\r")
		fmt.Printf("Assistant: %s\n\n", result.Response)
	}
}

func runServer() error {
	rt, err := createRuntime()
	if err != nil {
		return err
	}

	server := api.NewServer(rt.agent, rt.recorder, cfg.ServerPort, logger)
	return server.Start()
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage credentials stored in OS keychain",
		Long: `Manage API credentials stored securely in your OS keychain.

Credentials are stored in:
  - macOS: Keychain Access
  - Windows: Credential Manager
  - Linux: Secret Service (GNOME Keyring)

Examples:
  erwiq-agent config setup          # Interactive setup
  erwiq-agent config show           # Show configured credentials
  erwiq-agent config clear          # Remove all stored credentials`,
	}

	cmd.AddCommand(configSetupCmd())
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configClearCmd())

	return cmd
}

func configSetupCmd() *cobra.Command {
	var openaiKey, anthropicKey, geminiKey string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure API credentials",
		Long:  "Interactively configure and store API credentials in OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if openaiKey == "" {
				fmt.Print("OpenAI API Key (press Enter to skip): ")
				key, _ := readPassword()
				openaiKey = strings.TrimSpace(key)
			}

			if anthropicKey == "" {
				fmt.Print("Anthropic API Key (press Enter to skip): ")
				key, _ := readPassword()
				anthropicKey = strings.TrimSpace(key)
			}

			if geminiKey == "" {
				fmt.Print("Gemini API Key (press Enter to skip): ")
				key, _ := readPassword()
				geminiKey = strings.TrimSpace(key)
			}

			if err := credentials.Setup(openaiKey, anthropicKey, geminiKey); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			fmt.Println("\nCredentials stored securely in OS keychain.")
			fmt.Println("You can now run erwiq-agent without setting environment variables.")
			return nil
		},
	}

	cmd.Flags().StringVar(&openaiKey, "openai-key", "", "OpenAI API key")
	cmd.Flags().StringVar(&anthropicKey, "anthropic-key", "", "Anthropic API key")
	cmd.Flags().StringVar(&geminiKey, "gemini-key", "", "Gemini API key")

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configured credentials",
		Long:  "Display which credentials are configured in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			configured := credentials.ListConfigured()

			fmt.Println("Credential Status (stored in OS keychain):")
			fmt.Println("==========================================")

			status := func(ok bool) string {
				if ok {
					return "configured"
				}
				return "not set"
			}

			fmt.Printf("  OpenAI API Key:    %s\n", status(configured[credentials.KeyOpenAI]))
			fmt.Printf("  Anthropic API Key: %s\n", status(configured[credentials.KeyAnthropic]))
			fmt.Printf("  Gemini API Key:    %s\n", status(configured[credentials.KeyGemini]))

			fmt.Println("\nNote: Environment variables override keychain values.")
			return nil
		},
	}
}

func configClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all stored credentials",
		Long:  "Remove all credentials from the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("Are you sure you want to clear all stored credentials? [y/N]: ")
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))

			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := credentials.ClearAll(); err != nil {
				fmt.Printf("Warning: some credentials may not have been cleared: %v\n", err)
			}

			fmt.Println("All credentials cleared from keychain.")
			return nil
		},
	}
}

func readPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println()
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		return string(bytes), err
	}
	reader := bufio.NewReader(os.Stdin)
	return reader.ReadString('\n')
}
