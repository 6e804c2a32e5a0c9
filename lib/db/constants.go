package db

const PostNotFoundError = "post not found"
const UserNotFoundError = "user not found"
