package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"analizador/internal/config"
	"analizador/internal/core"
	"analizador/internal/logger"
	"analizador/pkg"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgYellow)
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log); err != nil {
		fmt.Printf("❌ Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	toolkit, err := core.NewToolkit(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize toolkit")
	}

	fmt.Printf("📝 Sesión iniciada. Logs guardados en: %s\n", toolkit.LogFile())

	reader := bufio.NewReader(os.Stdin)
	runMenu(ctx, toolkit, reader)
}

func runMenu(ctx context.Context, toolkit *core.Toolkit, reader *bufio.Reader) {
	for {
		titleColor.Println("\n=== analizador: Menú de utilidades ===")
		fmt.Println("1) Normalizador de texto")
		fmt.Println("2) Buscar patrones (fechas, dinero, correos)")
		fmt.Println("3) Resumen simple")
		fmt.Println("4) Extracción de entidades")
		fmt.Println("5) Palabras clave")
		fmt.Println("6) Análisis de sentimiento")
		fmt.Println("0) Salir")
		option := prompt(reader, "Selecciona una opción: ")

		if option == "0" {
			fmt.Println("Saliendo.")
			return
		}
		if len(option) != 1 || !strings.Contains("123456", option) {
			errorColor.Println("Opción no válida, intenta de nuevo.")
			continue
		}

		text := requestText(reader)
		runOperation(ctx, toolkit, option, text)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	promptColor.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// requestText asks for text directly or from a file, giving three attempts
// before falling back to direct input.
func requestText(reader *bufio.Reader) string {
	titleColor.Println("\n=== Obtener texto ===")
	for i := 0; i < 3; i++ {
		fmt.Println("Selecciona cómo ingresar el texto:")
		fmt.Println("1) Escribir directamente")
		fmt.Println("2) Leer desde archivo")
		switch prompt(reader, "> ") {
		case "1":
			promptColor.Println("Ingresa texto:")
			return prompt(reader, "> ")
		case "2":
			path := prompt(reader, "Ingresa la ruta del archivo de texto:\n> ")
			text, err := readFile(path)
			if err != nil {
				errorColor.Printf("%v\n", err)
				fmt.Println("Intenta de nuevo.")
				continue
			}
			return text
		default:
			errorColor.Println("Opción no válida, se intentará entrada manual.")
		}
	}
	promptColor.Println("Ingresa texto:")
	return prompt(reader, "> ")
}

func readFile(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("Error: El archivo '%s' no existe.", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Error al leer el archivo: %v", err)
	}
	return string(data), nil
}

func runOperation(ctx context.Context, toolkit *core.Toolkit, option, text string) {
	switch option {
	case "1":
		result := toolkit.Normalize(ctx, text)
		if result == nil {
			errorColor.Println("Error: texto vacío.")
			return
		}
		resultColor.Println("\n--- RESULTADOS ---")
		fmt.Println("Original:", result.Original)
		fmt.Println("Lematizado:", result.Lematizado)
		fmt.Println("Sin repeticiones:", result.SinRepeticiones)
		fmt.Println("Corregido:", result.Corregido)

	case "2":
		result := toolkit.FindPatterns(ctx, text)
		fmt.Println("\nFechas:", orNone(result.Fechas, "Ninguna"))
		fmt.Println("Dinero:", orNone(result.Dinero, "Ninguno"))
		fmt.Println("Correos:", orNone(result.Correos, "Ninguno"))

	case "3":
		if strings.TrimSpace(text) == "" {
			errorColor.Println("Error: texto vacío.")
			return
		}
		summary, err := toolkit.Summarize(ctx, text)
		if err != nil {
			errorColor.Printf("Ocurrió un error: %v\n", err)
			return
		}
		resultColor.Println("\n--- RESUMEN ---")
		fmt.Println(summary)

	case "4":
		groups, err := toolkit.Entities(ctx, text)
		if err != nil {
			errorColor.Printf("Ocurrió un error: %v\n", err)
			return
		}
		for _, bucket := range pkg.BucketOrder {
			fmt.Printf("%s: %s\n", bucket, orNone(groups[bucket], "Ninguno detectado"))
		}

	case "5":
		result, err := toolkit.Keywords(ctx, text)
		if err != nil {
			errorColor.Printf("Ocurrió un error: %v\n", err)
			return
		}
		if result == nil {
			errorColor.Println("Error: texto vacío.")
			return
		}
		for _, category := range pkg.CategoryOrder {
			resultColor.Printf("%s:\n", category)
			if len(result[category]) == 0 {
				fmt.Println("  (ninguno)")
				continue
			}
			for i, term := range result[category] {
				fmt.Printf("  %d. %s: score=%g\n", i+1, term.Text, term.Score)
			}
		}

	case "6":
		if strings.TrimSpace(text) == "" {
			errorColor.Println("Error: texto vacío.")
			return
		}
		result, err := toolkit.Sentiment(ctx, text)
		if err != nil {
			errorColor.Printf("Ocurrió un error: %v\n", err)
			return
		}
		resultColor.Printf("Resultado: %s (Confianza: %.4f) Estrellas: %s\n",
			result.Sentimiento, result.Confianza, result.Etiqueta)
	}
}

func orNone(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}
