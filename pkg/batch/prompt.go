package batch

const systemPrompt = `Você é um assistente especializado em extrair dados de produtos de documentos de pedidos de compra. Responda APENAS com JSON válido, sem texto adicional.`

const formatPrompt = `Analise o seguinte texto extraído de um pedido de compra e extraia APENAS os dados de produtos encontrados.

Responda EXATAMENTE neste formato JSON:
{
    "produtos": [
        {
            "codigo": "código do produto ou null",
            "referencia": "referência do produto ou null",
            "descricao": "descrição completa do produto",
            "quantidade": número_da_quantidade,
            "valor_unitario": valor_unitário_numérico,
            "valor_total": valor_total_numérico
        }
    ]
}

REGRAS OBRIGATÓRIAS:
- Responda APENAS com JSON válido
- Use null para campos não disponíveis (não aspas vazias)
- Valores numéricos devem ser números (sem símbolos de moeda)
- Extraia APENAS produtos/materiais, ignore informações de cabeçalho e rodapé
- Se não encontrar produtos, retorne: {"produtos": []}

Texto para análise:
`

func userPrompt(text string) string {
	return formatPrompt + "\n---INÍCIO DO TEXTO---\n" + text + "\n---FIM DO TEXTO---"
}
