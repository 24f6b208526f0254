package config

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CredentialsPath é o caminho do arquivo local de credenciais. Quando o
// arquivo existe, ele tem precedência sobre as variáveis de ambiente.
const CredentialsPath = "credentials.json"

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	GoogleSheets GoogleSheets `mapstructure:",squash"`
	Amazon       Amazon       `mapstructure:",squash"`
	Shopify1     Shopify      `mapstructure:",squash"`
	Shopify2     Shopify      `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	ReportSync   ReportSync   `mapstructure:",squash"`

	// Shops é a lista ordenada de lojas Shopify montada a partir de
	// Shopify1/Shopify2; a posição define o nome do canal (SHOPIFY1, ...).
	Shops []Shopify `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Sandbox troca os clientes de canal por geradores locais de pedidos
	Sandbox bool `mapstructure:"sandbox"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// GoogleSheets guarda os campos da service account usados tanto para ler o
// mapeamento de SKUs quanto para publicar os relatórios.
type GoogleSheets struct {
	ProjectID         string `mapstructure:"google_sheets_project_id" json:"project_id"`
	PrivateKeyID      string `mapstructure:"google_sheets_private_key_id" json:"private_key_id"`
	PrivateKey        string `mapstructure:"google_sheets_private_key" json:"private_key"`
	ClientEmail       string `mapstructure:"google_sheets_client_email" json:"client_email"`
	ClientID          string `mapstructure:"google_sheets_client_id" json:"client_id"`
	ClientX509CertURL string `mapstructure:"google_sheets_client_x509_cert_url" json:"client_x509_cert_url"`
}

// ServiceAccountJSON monta o JSON de service account esperado pelo pacote
// de autenticação do Google a partir dos campos configurados.
func (g GoogleSheets) ServiceAccountJSON() ([]byte, error) {
	account := map[string]string{
		"type":                        "service_account",
		"project_id":                  g.ProjectID,
		"private_key_id":              g.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(g.PrivateKey, `\n`, "\n"),
		"client_email":                g.ClientEmail,
		"client_id":                   g.ClientID,
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url":        g.ClientX509CertURL,
	}

	return json.Marshal(account)
}

type Amazon struct {
	BaseURL       string `mapstructure:"amazon_base_url"`
	AccessToken   string `mapstructure:"amazon_access_token"`
	MarketplaceID string `mapstructure:"amazon_marketplace_id"`
}

type Shopify struct {
	ShopURL     string `mapstructure:"shop_url"`
	APIKey      string `mapstructure:"api_key"`
	AccessToken string `mapstructure:"access_token"`
	APIVersion  string `mapstructure:"api_version"`
}

// Sheets identifica as planilhas de origem (mapeamento) e destino (relatórios).
type Sheets struct {
	SkuMappingSheetID  string `mapstructure:"sku_mapping_sheet_id"`
	SalesReportSheetID string `mapstructure:"sales_report_sheet_id"`
}

// ReportSync controla o agendamento periódico do pipeline e o servidor de
// operação que permite disparos manuais.
type ReportSync struct {
	Enabled      bool   `mapstructure:"report_sync_enabled"`
	CronSchedule string `mapstructure:"report_sync_cron"`
	LookbackDays int    `mapstructure:"report_sync_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("SANDBOX", false)

	// Sem default registrado o viper ignora a variável de ambiente no
	// Unmarshal; todos os campos da service account precisam constar aqui
	viper.SetDefault("GOOGLE_SHEETS_PROJECT_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_PRIVATE_KEY_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_PRIVATE_KEY", "")
	viper.SetDefault("GOOGLE_SHEETS_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_SHEETS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_CLIENT_X509_CERT_URL", "")

	viper.SetDefault("AMAZON_BASE_URL", "https://sellingpartnerapi-eu.amazon.com")
	viper.SetDefault("AMAZON_ACCESS_TOKEN", "")
	viper.SetDefault("AMAZON_MARKETPLACE_ID", "")

	viper.SetDefault("SHOPIFY1_SHOP_URL", "shop1.myshopify.com")
	viper.SetDefault("SHOPIFY1_API_KEY", "")
	viper.SetDefault("SHOPIFY1_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY1_API_VERSION", "2024-01")

	viper.SetDefault("SHOPIFY2_SHOP_URL", "shop2.myshopify.com")
	viper.SetDefault("SHOPIFY2_API_KEY", "")
	viper.SetDefault("SHOPIFY2_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY2_API_VERSION", "2024-01")

	// IDs das planilhas; os placeholders devem ser substituídos por ambiente
	viper.SetDefault("SKU_MAPPING_SHEET_ID", "your-sku-mapping-sheet-id")
	viper.SetDefault("SALES_REPORT_SHEET_ID", "your-sales-report-sheet-id")

	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_CRON", "0 6 * * 1") // Toda segunda-feira às 6h
	viper.SetDefault("REPORT_SYNC_LOOKBACK_DAYS", 30)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Campos por loja não passam pelo squash simples; resolver manualmente
	config.Shopify1 = shopFromEnv("SHOPIFY1")
	config.Shopify2 = shopFromEnv("SHOPIFY2")

	// O arquivo credentials.json, quando presente, sobrepõe o ambiente
	if err := applyCredentialsFile(config); err != nil {
		logrus.WithError(err).Error("Erro ao carregar o arquivo de credenciais")
		return nil, err
	}

	config.Shops = []Shopify{config.Shopify1, config.Shopify2}

	return config, nil
}

// shopFromEnv resolve os campos de uma loja Shopify pelo prefixo das
// variáveis (SHOPIFY1_*, SHOPIFY2_*).
func shopFromEnv(prefix string) Shopify {
	return Shopify{
		ShopURL:     viper.GetString(prefix + "_SHOP_URL"),
		APIKey:      viper.GetString(prefix + "_API_KEY"),
		AccessToken: viper.GetString(prefix + "_ACCESS_TOKEN"),
		APIVersion:  viper.GetString(prefix + "_API_VERSION"),
	}
}

// credentialsFile espelha o formato do credentials.json mantido junto da
// aplicação em ambientes locais.
type credentialsFile struct {
	GoogleSheets GoogleSheets `json:"google_sheets"`
	Amazon       struct {
		AccessToken   string `json:"access_token"`
		MarketplaceID string `json:"marketplace_id"`
	} `json:"amazon"`
	Shopify []struct {
		ShopURL     string `json:"shop_url"`
		APIKey      string `json:"api_key"`
		AccessToken string `json:"access_token"`
	} `json:"shopify"`
}

func applyCredentialsFile(config *Config) error {
	data, err := os.ReadFile(CredentialsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	logrus.WithField("path", CredentialsPath).Info("Credenciais carregadas do arquivo local")

	if file.GoogleSheets.ClientEmail != "" {
		config.GoogleSheets = file.GoogleSheets
	}
	if file.Amazon.AccessToken != "" {
		config.Amazon.AccessToken = file.Amazon.AccessToken
	}
	if file.Amazon.MarketplaceID != "" {
		config.Amazon.MarketplaceID = file.Amazon.MarketplaceID
	}

	shops := []*Shopify{&config.Shopify1, &config.Shopify2}
	for i, shop := range file.Shopify {
		if i >= len(shops) {
			break
		}
		if shop.AccessToken != "" {
			shops[i].AccessToken = shop.AccessToken
		}
		if shop.APIKey != "" {
			shops[i].APIKey = shop.APIKey
		}
		if shop.ShopURL != "" {
			shops[i].ShopURL = shop.ShopURL
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
