// Command ticktick-mcp starts the TickTick MCP server. It loads credentials
// from the .env file in the directory given by --dotenv-dir and exits with a
// non-zero status when that configuration cannot be loaded.
package main
