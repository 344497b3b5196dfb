package main

// @title           CS Nutri API
// @version         1.0
// @description     API do sistema de vendas e estoque da CS Nutri

// @contact.name   CS Nutri
// @contact.email  contato@csnutri.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
