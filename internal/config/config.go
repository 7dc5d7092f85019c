package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Odoo            Odoo            `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	Reporting       Reporting       `mapstructure:",squash"`
	ConnectionCheck ConnectionCheck `mapstructure:",squash"`
	CompanyOdooIDs  map[string]int  `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Odoo carrega as credenciais do ERP. Os quatro primeiros campos são
// obrigatórios; a ausência de qualquer um é detectada antes de qualquer
// chamada de rede e o valor nunca é ecoado em logs ou respostas.
type Odoo struct {
	URL            string `mapstructure:"odoo_url"`
	Database       string `mapstructure:"odoo_db"`
	User           string `mapstructure:"odoo_user"`
	Password       string `mapstructure:"odoo_password"`
	TimeoutSeconds int    `mapstructure:"odoo_timeout_seconds"`
}

type Gemini struct {
	APIKey  string `mapstructure:"gemini_api_key"`
	Model   string `mapstructure:"gemini_model"`
	BaseURL string `mapstructure:"gemini_base_url"`
}

type Reporting struct {
	TopProductsLimit int  `mapstructure:"top_products_limit"`
	FetchOrderLines  bool `mapstructure:"fetch_order_lines"`
}

type ConnectionCheck struct {
	CronSchedule string `mapstructure:"odoo_connection_check_cron"`
	Enabled      bool   `mapstructure:"odoo_connection_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ODOO_URL", "")
	viper.SetDefault("ODOO_DB", "")
	viper.SetDefault("ODOO_USER", "")
	viper.SetDefault("ODOO_PASSWORD", "")
	viper.SetDefault("ODOO_TIMEOUT_SECONDS", 30)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")

	viper.SetDefault("TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("FETCH_ORDER_LINES", true)

	// Defaults da sonda de conectividade com o Odoo
	viper.SetDefault("ODOO_CONNECTION_CHECK_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ODOO_CONNECTION_CHECK_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	// Mapeamento empresa → id interno do Odoo. A tabela é configuração de
	// implantação: os defaults cobrem as empresas conhecidas e
	// COMPANY_ODOO_MAPPING sobrepõe ou acrescenta entradas.
	config.CompanyOdooIDs = map[string]int{
		"botica-angie":       1, // Botica Angie
		"servilab-urubamba":  2, // SERVILAB URUBAMBA E.I.R.L.
		"baca-juarez":        3, // BACA JUAREZ YESIKA
		"botica-j-m":         4, // BOTICA J & M FARMA S.A.C.
		"bioplus-farma":      5, // BIOPLUS FARMA E.I.R.L.
		"feet-care":          6, // FEET CARE de DRIGUEZ MATEO YOHANNA MIRELLA
		"boticas-multifarma": 7, // Boticas MultiFarma
		"maripeya":           8, // MARIPEYA E.I.R.L.
		"ferreteria-sac":     9, // Ferreteria S.A.C.
	}

	for companyID, odooID := range parseCompanyMapping(viper.GetString("COMPANY_ODOO_MAPPING")) {
		config.CompanyOdooIDs[companyID] = odooID
	}

	return config, nil
}

// parseCompanyMapping interpreta pares "empresa:id" separados por vírgula,
// ex.: "botica-angie:7,maripeya:12". Pares malformados são ignorados com
// aviso para não derrubar o processo por um typo de implantação.
func parseCompanyMapping(raw string) map[string]int {
	mapping := make(map[string]int)

	if raw == "" {
		return mapping
	}

	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			logrus.Warnf("Entrada inválida em COMPANY_ODOO_MAPPING ignorada: %q", pair)
			continue
		}

		odooID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			logrus.Warnf("ID Odoo inválido em COMPANY_ODOO_MAPPING ignorado: %q", pair)
			continue
		}

		mapping[strings.TrimSpace(parts[0])] = odooID
	}

	return mapping
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
