package domain

// Company identifica uma empresa como o dashboard a conhece.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AssistantRequest é o corpo de uma pergunta ao assistente de vendas. O
// salesData acompanha a pergunta para que a resposta seja sobre exatamente
// os dados que o usuário está vendo.
type AssistantRequest struct {
	UserInput string     `json:"userInput"`
	Company   *Company   `json:"company"`
	SalesData *SalesData `json:"salesData"`
}

// AssistantResponse carrega o texto gerado pelo modelo.
type AssistantResponse struct {
	Text string `json:"text"`
}
