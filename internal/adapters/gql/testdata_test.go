package gql_test

const testSDL = `
type Query {
  me: User
}

type Mutation {
  updateUser(id: ID!, name: String, input: UserInput): User
  deleteUser(id: ID!): User
}

interface Node {
  id: ID!
}

type User implements Node {
  id: ID!
  name: String
  avatar(size: Int!): Image
  friends(first: Int): [User!]!
}

type Image {
  url: String
  width: Int
}

input UserInput {
  name: String
  tags: [String!]
}

enum Role {
  ADMIN
  MEMBER
}
`
