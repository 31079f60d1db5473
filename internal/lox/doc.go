/*
Package lox implements a tree-walking interpreter for a small Lox dialect with
variables, blocks, conditionals, loops with break, the comma operator and the
conditional operator.

Grammars

	program     --> decl* EOF ;
	decl        --> varDecl
	              | stmt ;
	varDecl     --> "var" IDENT ( "=" expression )? ";" ;
	stmt        --> block
	              | breakStmt
	              | exprStmt
	              | forStmt
	              | ifStmt
	              | printStmt
	              | whileStmt ;
	block       --> "{" decl* "}" ;
	breakStmt   --> "break" ";" ;
	exprStmt    --> expression ";" ;
	forStmt     --> "for" "(" ( varDecl | exprStmt | ";" ) expression? ";"
	                expression? ")" stmt ;
	ifStmt      --> "if" "(" expression ")" stmt ( "else" stmt )? ;
	printStmt   --> "print" expression ";" ;
	whileStmt   --> "while" "(" expression ")" stmt ;
	expression  --> comma ;
	comma       --> assignment ( "," assignment )* ;
	assignment  --> ternary ( "=" assignment )? ;
	ternary     --> equality ( "?" expression ":" ternary )? ;
	equality    --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison  --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
	addition    --> multiplication ( ( "-" | "+" ) multiplication )* ;
	multiplication --> unary ( ( "/" | "*" ) unary )* ;
	unary       --> ( "!" | "-" ) unary
	              | primary ;
	primary     --> NUMBER | STRING | IDENT
	              | "true" | "false" | "nil"
	              | "(" expression ")" ;

The left side of an assignment must be a variable, anything else is reported
as an invalid assignment target. "break" is only accepted inside the body of
a loop.
*/
package lox
